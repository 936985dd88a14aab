// Package export writes match results as an Excel workbook.
package export

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Sheet names in the workbook.
const (
	SheetSummary   = "Summary"
	SheetMatches   = "Ranked Matches"
	SheetSkillGaps = "Skill Gaps"
)

// Score bands used for row colouring and the summary distribution.
const (
	bandExcellent = 80
	bandGood      = 60
	bandFair      = 40
)

// Report is everything a workbook shows. Results are written in the given order.
type Report struct {
	Profile     types.ResumeProfile
	Jobs        []types.JobPosting
	Results     []types.MatchResult
	Skipped     []types.SkippedJob
	GeneratedAt time.Time
}

// WriteMatchesXLSX builds the workbook for r and saves it to path with a
// lower-case .xlsx extension. It returns the path written.
func WriteMatchesXLSX(path string, r Report) (string, error) {
	if ext := filepath.Ext(path); strings.EqualFold(ext, ".xlsx") {
		path = strings.TrimSuffix(path, ext)
	}
	path = filepath.Clean(path + ".xlsx")

	f, err := r.Build()
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

// Build returns the workbook in memory. The caller closes it.
func (r Report) Build() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetMatches, SheetSkillGaps} {
		if _, err := f.NewSheet(name); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	st, err := newStyles(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	w := &sheetWriter{f: f}
	r.writeSummary(w, st)
	r.writeMatches(w, st)
	r.writeSkillGaps(w, st)
	if w.err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", w.err)
	}
	return f, nil
}

type styles struct {
	title, label, header, wrap int
	bands                      [4]int // excellent, good, fair, poor
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	defs := []*excelize.Style{
		{
			Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		},
		{Font: &excelize.Font{Bold: true}},
		{
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    border,
		},
		{Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}, Border: border},
	}
	for _, colour := range []string{"C6EFCE", "FFEB9C", "FFC7CE", "FF9999"} {
		defs = append(defs, &excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{colour}, Pattern: 1},
			Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
			Border:    border,
		})
	}

	ids := make([]int, len(defs))
	for i, d := range defs {
		id, err := f.NewStyle(d)
		if err != nil {
			return styles{}, fmt.Errorf("failed to create style: %w", err)
		}
		ids[i] = id
	}
	return styles{
		title:  ids[0],
		label:  ids[1],
		header: ids[2],
		wrap:   ids[3],
		bands:  [4]int{ids[4], ids[5], ids[6], ids[7]},
	}, nil
}

func band(score int) int {
	switch {
	case score >= bandExcellent:
		return 0
	case score >= bandGood:
		return 1
	case score >= bandFair:
		return 2
	}
	return 3
}

// sheetWriter keeps the first excelize error so that cell writes can be
// chained without checking each one.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) do(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

func (w *sheetWriter) set(sheet string, col string, row int, v any) {
	w.do(w.f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v))
}

func (w *sheetWriter) style(sheet string, from, to string, row int, style int) {
	w.do(w.f.SetCellStyle(sheet, fmt.Sprintf("%s%d", from, row), fmt.Sprintf("%s%d", to, row), style))
}

func (w *sheetWriter) widths(sheet string, widths map[string]float64) {
	for col, width := range widths {
		w.do(w.f.SetColWidth(sheet, col, col, width))
	}
}

func (w *sheetWriter) headers(sheet string, names []string, style int) {
	for i, name := range names {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			w.do(err)
			return
		}
		w.set(sheet, col, 1, name)
		w.style(sheet, col, col, 1, style)
	}
	w.do(w.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}))
}

func (r Report) writeSummary(w *sheetWriter, st styles) {
	const sheet = SheetSummary
	w.widths(sheet, map[string]float64{"A": 28, "B": 60})

	w.set(sheet, "A", 1, "Job Match Report")
	w.style(sheet, "A", "B", 1, st.title)
	w.do(w.f.MergeCell(sheet, "A1", "B1"))

	row := 3
	label := func(name string, v any) {
		w.set(sheet, "A", row, name)
		w.style(sheet, "A", "A", row, st.label)
		w.set(sheet, "B", row, v)
		row++
	}

	name := r.Profile.Name
	if name == "" {
		name = "(unknown)"
	}
	label("Candidate:", name)
	label("Profile ID:", r.Profile.ID)
	label("Current Title:", r.Profile.CurrentJobTitle)
	label("Years of Experience:", r.Profile.YearsOfExperience)
	label("Summary:", r.Profile.GeneratedSummary)
	w.style(sheet, "B", "B", row-1, st.wrap)
	if !r.GeneratedAt.IsZero() {
		label("Generated:", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	}
	label("Jobs Scored:", len(r.Results))
	label("Jobs Skipped:", len(r.Skipped))
	row++

	if len(r.Results) == 0 {
		return
	}

	var counts [4]int
	total, high, low := 0, r.Results[0].MatchScore, r.Results[0].MatchScore
	for _, res := range r.Results {
		counts[band(res.MatchScore)]++
		total += res.MatchScore
		high = max(high, res.MatchScore)
		low = min(low, res.MatchScore)
	}

	w.set(sheet, "A", row, "Statistics")
	w.style(sheet, "A", "B", row, st.title)
	w.do(w.f.MergeCell(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row)))
	row++
	label(fmt.Sprintf("Excellent (%d-100):", bandExcellent), counts[0])
	label(fmt.Sprintf("Good (%d-%d):", bandGood, bandExcellent-1), counts[1])
	label(fmt.Sprintf("Fair (%d-%d):", bandFair, bandGood-1), counts[2])
	label(fmt.Sprintf("Poor (<%d):", bandFair), counts[3])
	label("Average Score:", fmt.Sprintf("%.2f", float64(total)/float64(len(r.Results))))
	label("Highest Score:", high)
	label("Lowest Score:", low)
}

func (r Report) writeMatches(w *sheetWriter, st styles) {
	const sheet = SheetMatches
	w.widths(sheet, map[string]float64{
		"A": 7, "B": 38, "C": 30, "D": 22, "E": 22, "F": 10,
		"G": 10, "H": 10, "I": 12, "J": 10, "K": 60,
	})
	w.headers(sheet, []string{
		"Rank", "Job ID", "Title", "Company", "Location", "Score",
		"Skills", "Title Match", "Experience", "Location", "Reasons",
	}, st.header)

	jobs := indexJobs(r.Jobs)
	for i, res := range r.Results {
		row := i + 2
		job := jobs[res.JobID]
		w.set(sheet, "A", row, i+1)
		w.set(sheet, "B", row, res.JobID)
		w.set(sheet, "C", row, job.Title)
		w.set(sheet, "D", row, job.Company)
		w.set(sheet, "E", row, job.Location)
		w.set(sheet, "F", row, res.MatchScore)
		w.set(sheet, "G", row, res.SkillsMatch.Score)
		w.set(sheet, "H", row, res.TitleMatch)
		w.set(sheet, "I", row, res.ExperienceMatch)
		w.set(sheet, "J", row, res.LocationMatch)
		w.set(sheet, "K", row, strings.Join(res.MatchReasons, "\n"))
		w.style(sheet, "A", "K", row, st.bands[band(res.MatchScore)])
	}

	if len(r.Results) > 0 {
		w.do(w.f.AutoFilter(sheet, fmt.Sprintf("A1:K%d", len(r.Results)+1), []excelize.AutoFilterOptions{}))
	}
}

func (r Report) writeSkillGaps(w *sheetWriter, st styles) {
	const sheet = SheetSkillGaps
	w.widths(sheet, map[string]float64{"A": 38, "B": 30, "C": 45, "D": 45, "F": 24, "G": 12})
	w.headers(sheet, []string{"Job ID", "Title", "Matched Skills", "Missing Skills"}, st.header)
	w.set(sheet, "F", 1, "Missing Skill")
	w.set(sheet, "G", 1, "Jobs")
	w.style(sheet, "F", "G", 1, st.header)

	jobs := indexJobs(r.Jobs)
	missing := make(map[string]int)
	spelling := make(map[string]string)
	for i, res := range r.Results {
		row := i + 2
		w.set(sheet, "A", row, res.JobID)
		w.set(sheet, "B", row, jobs[res.JobID].Title)
		w.set(sheet, "C", row, strings.Join(res.SkillsMatch.Matched, ", "))
		w.set(sheet, "D", row, strings.Join(res.SkillsMatch.Missing, ", "))
		w.style(sheet, "A", "D", row, st.wrap)

		for _, s := range res.SkillsMatch.Missing {
			k := strings.ToLower(s)
			if _, ok := spelling[k]; !ok {
				spelling[k] = s
			}
			missing[k]++
		}
	}

	for i, gap := range rankGaps(missing) {
		row := i + 2
		w.set(sheet, "F", row, spelling[gap.skill])
		w.set(sheet, "G", row, gap.jobs)
	}
}

type skillGap struct {
	skill string
	jobs  int
}

// rankGaps orders missing skills by how many jobs ask for them, then by name.
func rankGaps(missing map[string]int) []skillGap {
	gaps := make([]skillGap, 0, len(missing))
	for s, n := range missing {
		gaps = append(gaps, skillGap{s, n})
	}
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].jobs != gaps[j].jobs {
			return gaps[i].jobs > gaps[j].jobs
		}
		return gaps[i].skill < gaps[j].skill
	})
	return gaps
}

func indexJobs(jobs []types.JobPosting) map[string]types.JobPosting {
	m := make(map[string]types.JobPosting, len(jobs))
	for _, j := range jobs {
		if _, ok := m[j.ID]; !ok {
			m[j.ID] = j
		}
	}
	return m
}
