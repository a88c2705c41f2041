/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// ApplyThemes returns copies of tokens with each theme's overrides applied
// in order. When multiple themes override the same token, the later theme
// wins. Tokens without an override keep their own value. The input slice
// and its tokens are not mutated.
func ApplyThemes(tokens []*Token, themes []*Theme) []*Token {
	themed := make([]*Token, 0, len(tokens))
	for _, tok := range tokens {
		out := *tok
		for _, theme := range themes {
			if theme == nil {
				continue
			}
			if value, ok := theme.OverriddenValues[tok.ID]; ok {
				out.Value = value
			}
		}
		themed = append(themed, &out)
	}
	return themed
}

// ValueIndex maps token IDs to their values for one valuation.
func ValueIndex(tokens []*Token) map[string]string {
	index := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		index[tok.ID] = tok.Value
	}
	return index
}
