package ui

import "strconv"

// ID is a stable 32-bit panel identifier derived from the caller's
// name. Zero is reserved for "no ID".
type ID uint32

// Hash is a djb2 string hash. Deterministic and order-sensitive, so
// the same name yields the same ID on every frame, which is what
// lets overrides and hover state survive the per-frame tree rebuild.
func Hash(s string) ID {
	if s == "" {
		return 0
	}
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return ID(h)
}

// generateID returns Hash(name) on the first use of name this frame.
// Repeat uses within the same frame are disambiguated by rehashing
// with an occurrence suffix, so two buttons labelled "Save" in one
// frame get distinct IDs while "Save" across frames stays stable.
func (c *Context) generateID(name string) ID {
	base := Hash(name)
	for i := range c.usedIDs {
		if c.usedIDs[i].id == base {
			n := c.usedIDs[i].count
			c.usedIDs[i].count++
			return Hash(name + "##" + strconv.Itoa(n))
		}
	}
	if len(c.usedIDs) < cap(c.usedIDs) {
		c.usedIDs = append(c.usedIDs, usedID{id: base})
	} else {
		c.stats.IDsDropped++
	}
	return base
}
