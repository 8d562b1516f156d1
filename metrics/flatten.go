package metrics

import "github.com/bitrise-steplib/steps-test-metrics/report"

// Item is a single test execution together with everything it inherits from the tree above it.
type Item struct {
	Test report.Test
	// Annotations holds every ancestor's own annotations followed by the test's, root first.
	Annotations []report.Annotation
	ProjectName string
	// TitlePath holds suite titles from the top level suite down to the spec title.
	TitlePath []string
	File      string
}

// Outcome ...
func (i Item) Outcome() Outcome {
	return NormalizeOutcome(i.Test.RawOutcome())
}

// FlattenReport flattens every top level suite of the report, in order.
func FlattenReport(r report.Report) []Item {
	var items []Item
	for _, suite := range r.Suites {
		items = append(items, Flatten(suite)...)
	}
	return items
}

// Flatten walks the suite tree depth-first and returns one Item per test leaf.
// A suite's own specs come before the contents of its child suites.
func Flatten(root report.Suite) []Item {
	var items []Item

	var walk func(suite report.Suite, inherited []report.Annotation, titlePath []string)
	walk = func(suite report.Suite, inherited []report.Annotation, titlePath []string) {
		for _, spec := range suite.Specs {
			specAnnotations := concatAnnotations(inherited, spec.Annotations)
			specTitlePath := appendTitle(titlePath, string(spec.Title))
			specFile := resolveSpecFile(suite, spec)

			for _, test := range spec.Tests {
				file := test.FilePath()
				if file == "" {
					file = specFile
				}

				items = append(items, Item{
					Test:        test,
					Annotations: concatAnnotations(specAnnotations, test.Annotations),
					ProjectName: string(test.ProjectName),
					TitlePath:   specTitlePath,
					File:        file,
				})
			}
		}

		for _, child := range suite.Suites {
			walk(child, concatAnnotations(inherited, child.Annotations), appendTitle(titlePath, string(child.Title)))
		}
	}

	walk(root, concatAnnotations(nil, root.Annotations), []string{string(root.Title)})

	return items
}

// resolveSpecFile picks the file shared by every test of the spec: the spec's own file, then
// the owning suite's, then the first test's.
func resolveSpecFile(suite report.Suite, spec report.Spec) string {
	if file := spec.FilePath(); file != "" {
		return file
	}
	if file := suite.FilePath(); file != "" {
		return file
	}
	if len(spec.Tests) > 0 {
		return spec.Tests[0].FilePath()
	}
	return ""
}

// concatAnnotations always allocates, so items never share a backing array.
func concatAnnotations(parent, own []report.Annotation) []report.Annotation {
	out := make([]report.Annotation, 0, len(parent)+len(own))
	out = append(out, parent...)
	return append(out, own...)
}

func appendTitle(titlePath []string, title string) []string {
	out := make([]string, 0, len(titlePath)+1)
	out = append(out, titlePath...)
	return append(out, title)
}
