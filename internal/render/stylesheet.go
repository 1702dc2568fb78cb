// stylesheet.go manages the shared stylesheet link for rendered pages.
package render

import "sync"

// StylesheetID keys the injected link element so repeated installs and
// removals stay idempotent.
const StylesheetID = "infobox-stylesheet"

// Stylesheet installs and removes the panel stylesheet link in a page head.
// It is the only shared resource in the pipeline, so both operations are
// guarded and safe to call any number of times.
type Stylesheet struct {
	Href string

	mu sync.Mutex
}

// EnsureInstalled adds the stylesheet link to head unless one keyed by
// StylesheetID is already present.
func (s *Stylesheet) EnsureInstalled(head *Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Href == "" || head.FindByID(StylesheetID) != nil {
		return
	}
	link := head.ChildElement("link", "")
	link.SetAttr("id", StylesheetID)
	link.SetAttr("rel", "stylesheet")
	link.SetAttr("href", s.Href)
}

// EnsureRemoved removes the stylesheet link from head if present.
func (s *Stylesheet) EnsureRemoved(head *Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	head.RemoveByID(StylesheetID)
}
