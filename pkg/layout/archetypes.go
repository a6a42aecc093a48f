package layout

// DailyCapacity is the number of labeled blocks on a daily page.
const DailyCapacity = 6

// DailyLayout holds the six daily blocks: two tall upper blocks followed by
// a 2x2 grid in row-major order.
type DailyLayout struct {
	ColumnWidth int
	Upper       [2]Rect
	Lower       [4]Rect
}

// Blocks returns the six blocks in section order.
func (d DailyLayout) Blocks() []Rect {
	return append(d.Upper[:], d.Lower[:]...)
}

// Daily partitions the body of a daily page.
func Daily(f Frame) DailyLayout {
	body := f.Body(BodyGapRatio)
	colGap := Pct(f.W, 0.02)
	colW := floorDiv(f.InnerWidth()-colGap, 2)
	upperH := Pct(body.Height(), 0.30)

	var d DailyLayout
	d.ColumnWidth = colW
	for i := range d.Upper {
		left := f.MarginX + i*(colW+colGap)
		d.Upper[i] = Rect{Left: left, Top: body.Top, Right: left + colW, Bottom: body.Top + upperH}
	}

	gridTop := body.Top + upperH + Pct(f.H, 0.03)
	rowGap := Pct(f.H, 0.02)
	rowH := floorDiv(body.Bottom-gridTop-rowGap, 2)
	for row := range 2 {
		for col := range 2 {
			left := f.MarginX + col*(colW+colGap)
			top := gridTop + row*(rowH+rowGap)
			d.Lower[row*2+col] = Rect{Left: left, Top: top, Right: left + colW, Bottom: top + rowH}
		}
	}
	return d
}

// WeeklyLayout holds one row per day plus the shared stripe width.
type WeeklyLayout struct {
	Rows    []Rect
	StripeW int
	// LinesLeft is where the ruled region of each row starts.
	LinesLeft int
}

// Stripe returns the colored day stripe at the left edge of row i.
func (w WeeklyLayout) Stripe(i int) Rect {
	r := w.Rows[i]
	r.Right = r.Left + w.StripeW
	return r
}

// Weekly partitions the body of a weekly page into n equal rows.
func Weekly(f Frame, n int) WeeklyLayout {
	return dayRows(f, f.Body(BodyGapRatio), n)
}

// SingleFooterRatio is the share of the canvas height reserved for the
// quote footer of a single-page planner.
const SingleFooterRatio = 0.06

// Single partitions a single-page planner into day rows above a quote
// footer.
func Single(f Frame, n int) (rows WeeklyLayout, footer Rect) {
	body := f.Body(BodyGapRatio)
	footer = Rect{Left: body.Left, Top: body.Bottom - Pct(f.H, SingleFooterRatio), Right: body.Right, Bottom: body.Bottom}
	body.Bottom = footer.Top - Pct(f.H, 0.01)
	return dayRows(f, body, n), footer
}

func dayRows(f Frame, body Rect, n int) WeeklyLayout {
	stripeW := Pct(f.W, 0.12)
	w := WeeklyLayout{StripeW: stripeW, LinesLeft: f.MarginX + stripeW + Pct(f.W, 0.04)}
	if n <= 0 {
		return w
	}
	gap := Pct(f.H, 0.01)
	rowH := floorDiv(body.Height()-(n-1)*gap, n)
	w.Rows = make([]Rect, n)
	for i := range w.Rows {
		top := body.Top + i*(rowH+gap)
		w.Rows[i] = Rect{Left: f.MarginX, Top: top, Right: f.W - f.MarginX, Bottom: top + rowH}
	}
	return w
}

// Calendar grid dimensions on the monthly page.
const (
	CalendarRows = 5
	CalendarCols = 7
	CalendarGap  = 2
	MonthlyCap   = 4
)

// MonthlyLayout holds the calendar cells and the right-hand blocks.
type MonthlyLayout struct {
	Cells  []Rect
	Blocks []Rect
}

// Monthly partitions the body of a monthly page. The right column holds
// min(MonthlyCap, n) blocks.
func Monthly(f Frame, n int) MonthlyLayout {
	body := f.Body(BodyGapRatio)
	gridW := Pct(f.InnerWidth(), 0.58)
	cellW := floorDiv(gridW-(CalendarCols+1)*CalendarGap, CalendarCols)
	cellH := floorDiv(body.Height()-(CalendarRows+1)*CalendarGap, CalendarRows)

	var m MonthlyLayout
	m.Cells = make([]Rect, 0, CalendarRows*CalendarCols)
	for r := range CalendarRows {
		for c := range CalendarCols {
			left := f.MarginX + CalendarGap + c*(cellW+CalendarGap)
			top := body.Top + CalendarGap + r*(cellH+CalendarGap)
			m.Cells = append(m.Cells, Rect{Left: left, Top: top, Right: left + cellW, Bottom: top + cellH})
		}
	}

	n = min(MonthlyCap, n)
	if n <= 0 {
		return m
	}
	rightLeft := f.MarginX + gridW + Pct(f.W, 0.03)
	rightW := f.W - f.MarginX - rightLeft
	gap := Pct(f.H, 0.015)
	blockH := floorDiv(body.Height()-(n-1)*gap, n)
	m.Blocks = make([]Rect, n)
	for i := range m.Blocks {
		top := body.Top + i*(blockH+gap)
		m.Blocks[i] = Rect{Left: rightLeft, Top: top, Right: rightLeft + rightW, Bottom: top + blockH}
	}
	return m
}

// YearlyCapacity is the number of quarter blocks on a yearly page.
const YearlyCapacity = 4

// Yearly partitions the body of a yearly page into a 2x2 grid in
// row-major order.
func Yearly(f Frame) [YearlyCapacity]Rect {
	body := f.Body(BodyGapRatio)
	gap := Pct(f.H, 0.02)
	cellW := floorDiv(f.InnerWidth()-gap, 2)
	cellH := floorDiv(body.Height()-gap, 2)

	var cells [YearlyCapacity]Rect
	for r := range 2 {
		for c := range 2 {
			left := f.MarginX + c*(cellW+gap)
			top := body.Top + r*(cellH+gap)
			cells[r*2+c] = Rect{Left: left, Top: top, Right: left + cellW, Bottom: top + cellH}
		}
	}
	return cells
}

// NotesLineCount is the number of guide lines on a notes page.
const NotesLineCount = 24

// Notes returns the y coordinates of the notes page guide lines. The first
// line sits on the body top and spacing is body height / NotesLineCount.
func Notes(f Frame) []int {
	body := f.Body(NotesGapRatio)
	spacing := floorDiv(body.Height(), NotesLineCount)
	if spacing <= 0 {
		return nil
	}
	ys := make([]int, NotesLineCount)
	for i := range ys {
		ys[i] = body.Top + i*spacing
	}
	return ys
}

// Circle is a filled circular motif.
type Circle struct {
	CX, CY, R int
	// Primary selects the first accent color; otherwise the second.
	Primary bool
}

// Motifs returns the four corner-proximal decoration circles.
func Motifs(f Frame) [4]Circle {
	r := Pct(f.MinDim(), DecorRatio)
	return [4]Circle{
		{CX: Pct(f.W, 0.12), CY: Pct(f.H, 0.10), R: r, Primary: true},
		{CX: Pct(f.W, 0.88), CY: Pct(f.H, 0.18), R: r},
		{CX: Pct(f.W, 0.16), CY: Pct(f.H, 0.85), R: r},
		{CX: Pct(f.W, 0.84), CY: Pct(f.H, 0.80), R: r, Primary: true},
	}
}
