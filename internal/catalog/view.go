package catalog

// View owns the state of one browse session: the loaded dataset, the
// selected region, and the current page. All mutation goes through its
// methods so that a filter change and its page reset always land together
// and no render can observe a stale page against a new filter.
//
// View is not safe for concurrent use; the CLI and the TUI both drive it
// from a single goroutine.
type View struct {
	pageSize int
	animals  []Animal
	region   string
	page     int
	loading  bool
	err      error
}

// Snapshot is the per-render projection of a View: everything the
// presentation layer needs and nothing it may mutate.
type Snapshot struct {
	// Records is the visible page of the filtered dataset.
	Records []Animal

	// Regions is the ordered list of selectable filter values.
	Regions []string

	// Region is the active filter, RegionAll when unfiltered.
	Region string

	Page         int
	TotalPages   int
	TotalRecords int

	Loading bool
	Err     error
}

// NewView creates a View with no dataset, no region filter, and page 1.
func NewView(pageSize int) *View {
	if pageSize < 1 {
		pageSize = 1
	}
	return &View{
		pageSize: pageSize,
		region:   RegionAll,
		page:     1,
	}
}

// BeginLoad marks a load cycle as in flight. The presentation layer uses
// the flag to suppress rendering of the (possibly stale) dataset.
func (v *View) BeginLoad() {
	v.loading = true
}

// FinishLoad installs the outcome of a load cycle. On success the dataset is
// replaced wholesale, any previous error is cleared, and the current page is
// re-clamped against the new filtered size. On failure the previous dataset
// is discarded so no partial or stale data is ever shown.
//
// Overlapping loads are not deduplicated: whichever response lands last
// wins, regardless of request order.
func (v *View) FinishLoad(animals []Animal, err error) {
	v.loading = false
	if err != nil {
		v.animals = nil
		v.err = err
		v.page = 1
		return
	}
	v.animals = animals
	v.err = nil
	v.page = ClampPage(v.page, v.totalPages())
}

// SelectRegion switches the region filter and unconditionally resets the
// page to 1, even when the new filter would have kept the old page valid.
func (v *View) SelectRegion(region string) {
	v.region = region
	v.page = 1
}

// GoToPage jumps to the requested page, clamped into valid bounds.
func (v *View) GoToPage(page int) {
	v.page = ClampPage(page, v.totalPages())
}

// NextPage advances one page, stopping at the last page.
func (v *View) NextPage() {
	v.GoToPage(v.page + 1)
}

// PrevPage goes back one page, stopping at page 1.
func (v *View) PrevPage() {
	v.GoToPage(v.page - 1)
}

// Region returns the active filter value.
func (v *View) Region() string {
	return v.region
}

// Page returns the current 1-based page number.
func (v *View) Page() int {
	return v.page
}

// Snapshot recomputes the derived views (filtered subset, visible page,
// selectable regions) from the current state. It is called after every state
// transition; nothing is cached between calls.
func (v *View) Snapshot() Snapshot {
	filtered := v.filtered()
	return Snapshot{
		Records:      PageSlice(filtered, v.pageSize, v.page),
		Regions:      AvailableRegions(v.animals),
		Region:       v.region,
		Page:         ClampPage(v.page, TotalPages(len(filtered), v.pageSize)),
		TotalPages:   TotalPages(len(filtered), v.pageSize),
		TotalRecords: len(filtered),
		Loading:      v.loading,
		Err:          v.err,
	}
}

func (v *View) filtered() []Animal {
	return FilterByRegion(v.animals, v.region)
}

func (v *View) totalPages() int {
	return TotalPages(len(v.filtered()), v.pageSize)
}
