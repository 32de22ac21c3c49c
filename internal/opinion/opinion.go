// Package opinion abstracts the external text-evaluation oracle that supplies
// the overall ATS score, qualitative feedback, and the structured section
// breakdown. Any backend returning the same textual surface contract is
// substitutable; the core pipeline also runs with no provider at all.
package opinion

import "context"

// Provider is the external scoring/feedback source.
type Provider interface {
	// ExtractSections asks the provider to reorganize the resume under the
	// literal Education/Experience/Projects headers plus a numbered
	// Experience Dates listing.
	ExtractSections(ctx context.Context, resumeText string) (string, error)

	// Evaluate asks the provider for a free-form ATS evaluation of the resume
	// against the job requirements. The response must contain an
	// "Overall ATS Score: NN/100" line.
	Evaluate(ctx context.Context, resumeText, jobRequirements string) (string, error)
}
