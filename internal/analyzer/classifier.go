package analyzer

import "strings"

// DocumentType labels the kind of document a block of text most resembles.
type DocumentType string

const (
	DocumentTypeResume      DocumentType = "resume"
	DocumentTypeMarksheet   DocumentType = "marksheet"
	DocumentTypeCertificate DocumentType = "certificate"
	DocumentTypeIDCard      DocumentType = "id_card"
	DocumentTypeUnknown     DocumentType = "unknown"
)

// classifyThreshold is the minimum combined score for a confident classification.
const classifyThreshold = 0.15

// documentTypeOrder fixes iteration order so ties resolve to the first type listed.
var documentTypeOrder = []DocumentType{
	DocumentTypeResume,
	DocumentTypeMarksheet,
	DocumentTypeCertificate,
	DocumentTypeIDCard,
}

var documentTypeKeywords = map[DocumentType][]string{
	DocumentTypeResume: {
		"experience", "education", "skills", "work", "project", "objective",
		"summary", "employment", "qualification", "achievements",
	},
	DocumentTypeMarksheet: {
		"grade", "marks", "score", "semester", "cgpa", "sgpa", "examination",
		"result", "academic year", "percentage",
	},
	DocumentTypeCertificate: {
		"certificate", "certification", "awarded", "completed", "achievement",
		"training", "course completion", "qualified",
	},
	DocumentTypeIDCard: {
		"id card", "identity", "student id", "employee id", "valid until",
		"date of issue", "identification",
	},
}

// DetectDocumentType scores the text against each known document type and
// returns the best match. Each type is scored by keyword density (matched
// keywords over keyword-list size) blended with keyword frequency (matched
// keywords over word count), weighted 70/30. Anything scoring at or below
// the threshold is reported as unknown.
func DetectDocumentType(text string) DocumentType {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(lower))

	best := DocumentTypeUnknown
	bestScore := 0.0
	for _, docType := range documentTypeOrder {
		keywords := documentTypeKeywords[docType]
		matches := 0
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				matches++
			}
		}
		density := float64(matches) / float64(len(keywords))
		frequency := float64(matches) / float64(wordCount+1)
		score := density*0.7 + frequency*0.3
		if score > bestScore {
			best = docType
			bestScore = score
		}
	}

	if bestScore <= classifyThreshold {
		return DocumentTypeUnknown
	}
	return best
}
