package analyzer

import "testing"

func TestDetectDocumentType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want DocumentType
	}{
		{
			name: "resume keywords classify as resume",
			text: "Education\nExperience\nSkills\nProjects and achievements from past employment",
			want: DocumentTypeResume,
		},
		{
			name: "marksheet keywords classify as marksheet not resume",
			text: "grade marks score semester cgpa sgpa examination result academic year percentage",
			want: DocumentTypeMarksheet,
		},
		{
			name: "certificate keywords classify as certificate",
			text: "This certificate is awarded for course completion of the training. Certification qualified.",
			want: DocumentTypeCertificate,
		},
		{
			name: "id card keywords classify as id card",
			text: "student id card, identity number, date of issue, valid until 2030, identification",
			want: DocumentTypeIDCard,
		},
		{
			name: "unrelated text is unknown",
			text: "the quick brown fox jumps over the lazy dog again and again",
			want: DocumentTypeUnknown,
		},
		{
			name: "empty text is unknown",
			text: "",
			want: DocumentTypeUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectDocumentType(tc.text); got != tc.want {
				t.Fatalf("DetectDocumentType() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDetectDocumentTypeLowThresholdIsUnknown(t *testing.T) {
	// A single weak keyword in a long document should not be enough.
	long := "work "
	for i := 0; i < 200; i++ {
		long += "lorem ipsum dolor sit amet "
	}
	if got := DetectDocumentType(long); got != DocumentTypeUnknown {
		t.Fatalf("DetectDocumentType() = %q, want %q", got, DocumentTypeUnknown)
	}
}
