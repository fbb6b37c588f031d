package models

// Work is an ordered list of pages sharing one work id.
type Work struct {
	ID    string
	Pages []Page
}

// GroupPages splits an ordered page stream into works, keyed by the work-id
// prefix of each page id. Page order within a work and first-seen work order
// are both preserved; the input is assumed sorted by work id, but grouping
// does not depend on it.
func GroupPages(pages []Page) []Work {
	var works []Work
	index := make(map[string]int)
	for _, page := range pages {
		wid := page.WorkID()
		i, ok := index[wid]
		if !ok {
			i = len(works)
			index[wid] = i
			works = append(works, Work{ID: wid})
		}
		works[i].Pages = append(works[i].Pages, page)
	}
	return works
}
