package filterengine

import "qr-menu/internal/model"

// TagIndex resolves the tag references used by conditions. Conditions may name a
// tag by identifier or by key; items always store identifiers.
type TagIndex struct {
	ids   map[string]struct{}
	byKey map[string]string
}

// NewTagIndex indexes tags. When two tags share a key the first one wins.
func NewTagIndex(tags []model.Tag) TagIndex {
	idx := TagIndex{
		ids:   make(map[string]struct{}, len(tags)),
		byKey: make(map[string]string, len(tags)),
	}
	for _, t := range tags {
		idx.ids[t.ID] = struct{}{}
		if _, dup := idx.byKey[t.Key]; !dup && t.Key != "" {
			idx.byKey[t.Key] = t.ID
		}
	}
	return idx
}

// Resolve maps ref to a tag identifier, trying the identifier form first and the key
// form second.
func (idx TagIndex) Resolve(ref string) (string, bool) {
	if _, ok := idx.ids[ref]; ok {
		return ref, true
	}
	id, ok := idx.byKey[ref]
	return id, ok
}

// itemHasTag reports whether item carries ref, either literally or through key lookup.
func (idx TagIndex) itemHasTag(item model.Item, ref string) bool {
	if item.HasTag(ref) {
		return true
	}
	id, ok := idx.Resolve(ref)
	if !ok || id == ref {
		return false
	}
	return item.HasTag(id)
}
