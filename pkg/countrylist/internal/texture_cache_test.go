package internal

import "testing"

type fakeTexture struct {
	name      string
	destroyed *[]string
}

func (f fakeTexture) Destroy() error {
	*f.destroyed = append(*f.destroyed, f.name)
	return nil
}

func TestLRUCacheEvictsLeastRecentlyUsed(t *testing.T) {
	var destroyed []string
	tex := func(name string) fakeTexture { return fakeTexture{name: name, destroyed: &destroyed} }

	c := newLRUCache[fakeTexture](2)
	c.Set("CA", tex("CA"))
	c.Set("MX", tex("MX"))

	if _, ok := c.Get("CA"); !ok {
		t.Fatal("CA missing")
	}

	c.Set("US", tex("US"))

	if _, ok := c.Get("MX"); ok {
		t.Error("MX should have been evicted")
	}
	if len(destroyed) != 1 || destroyed[0] != "MX" {
		t.Errorf("destroyed = %v, want [MX]", destroyed)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d", c.Len())
	}
}

func TestLRUCacheReplaceDestroysOld(t *testing.T) {
	var destroyed []string
	c := newLRUCache[fakeTexture](4)
	c.Set("title", fakeTexture{name: "old", destroyed: &destroyed})
	c.Set("title", fakeTexture{name: "new", destroyed: &destroyed})

	if v, _ := c.Get("title"); v.name != "new" {
		t.Errorf("Get() = %q", v.name)
	}
	if len(destroyed) != 1 || destroyed[0] != "old" {
		t.Errorf("destroyed = %v", destroyed)
	}

	c.Destroy()
	if c.Len() != 0 || len(destroyed) != 2 {
		t.Errorf("after Destroy: len %d destroyed %v", c.Len(), destroyed)
	}
}
