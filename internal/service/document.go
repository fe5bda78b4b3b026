package service

// withoutID returns a shallow copy of doc without the "_id" key, leaving
// the caller's map untouched.
func withoutID[D ~map[string]any](doc D) D {
	out := make(D, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = v
	}
	return out
}
