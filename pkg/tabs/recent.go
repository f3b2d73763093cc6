package tabs

// maxRecent bounds the recently-viewed list.
const maxRecent = 5

// RecentItem is one recently-viewed record.
type RecentItem struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// RecentList is the bounded most-recently-viewed list, newest first and
// deduplicated by uuid.
type RecentList []RecentItem

// Touch moves uuid to the front, inserting it if absent, and clamps the
// list to its bound. The receiver is not modified.
func (r RecentList) Touch(uuid, name string) RecentList {
	out := make(RecentList, 0, len(r)+1)
	out = append(out, RecentItem{UUID: uuid, Name: name})
	for _, item := range r {
		if item.UUID == uuid {
			continue
		}
		out = append(out, item)
	}
	if len(out) > maxRecent {
		out = out[:maxRecent]
	}
	return out
}

// Drop removes uuid from the list, for content that no longer exists.
func (r RecentList) Drop(uuid string) RecentList {
	out := make(RecentList, 0, len(r))
	for _, item := range r {
		if item.UUID != uuid {
			out = append(out, item)
		}
	}
	return out
}
