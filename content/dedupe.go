package content

// DedupeStrings removes semantic duplicates from a list of bullet texts,
// keeping the longest cleaned variant of each group. Output order is the
// first-seen order of surviving keys, and no two outputs share a non-empty
// comparison key.
func DedupeStrings(bullets []string) []string {
	if len(bullets) == 0 {
		return nil
	}
	index := make(map[string]int, len(bullets))
	out := make([]string, 0, len(bullets))

	for _, b := range bullets {
		clean := CleanText(b)
		if clean == "" {
			continue
		}
		key := ComparisonKey(clean)
		if key == "" {
			continue
		}
		if i, seen := index[key]; seen {
			if len(clean) > len(out[i]) {
				out[i] = clean
			}
			continue
		}
		index[key] = len(out)
		out = append(out, clean)
	}
	return out
}

// DedupeItems is the structured-item variant of DedupeStrings: the text
// field is cleaned and replaced in place, other fields are preserved, and
// the product-name placeholder is substituted when productName is set.
func DedupeItems(items []Item, productName string) []Item {
	if len(items) == 0 {
		return nil
	}
	index := make(map[string]int, len(items))
	out := make([]Item, 0, len(items))

	for _, it := range items {
		clean := CleanText(it.Text)
		if clean == "" {
			continue
		}
		key := ComparisonKey(clean)
		if key == "" {
			continue
		}
		it.Text = ReplaceProductName(clean, productName)
		it.Note = ReplaceProductName(it.Note, productName)
		if i, seen := index[key]; seen {
			if len(clean) > len(CleanText(out[i].Text)) {
				out[i] = it
			}
			continue
		}
		index[key] = len(out)
		out = append(out, it)
	}
	return out
}
