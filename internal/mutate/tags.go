package mutate

import "github.com/YannErmes/langlearn/internal/storage"

// AddTag appends a tag to the global tag list if it is not already there.
// Entry-level tags are independent of this list and are not reconciled.
func AddTag(doc storage.AppData, tag string) storage.AppData {
	for _, t := range doc.Tags {
		if t == tag {
			return doc
		}
	}
	tags := make([]string, 0, len(doc.Tags)+1)
	tags = append(tags, doc.Tags...)
	tags = append(tags, tag)
	doc.Tags = tags
	return doc
}

// RemoveTag removes a tag from the global list. Entries keep whatever tags
// they carry.
func RemoveTag(doc storage.AppData, tag string) storage.AppData {
	tags := make([]string, 0, len(doc.Tags))
	for _, t := range doc.Tags {
		if t != tag {
			tags = append(tags, t)
		}
	}
	doc.Tags = tags
	return doc
}
