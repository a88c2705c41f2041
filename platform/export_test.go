/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package platform

import "time"

// SetRetryDelay shortens the retry backoff in tests.
func (c *Client) SetRetryDelay(d time.Duration) {
	c.retryDelay = d
}
