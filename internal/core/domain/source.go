package domain

import "fmt"

// SourceKind discriminates where an input axis draws its content from.
type SourceKind string

const (
	// SourceInline takes the value directly from the command line.
	SourceInline SourceKind = "inline"
	// SourceFile reads the value from a newline-delimited text file.
	SourceFile SourceKind = "file"
)

// TextSource is the tagged source for the sentence axis. Exactly one variant
// is populated; build values through the constructors so the neither-given
// and both-given states stay unrepresentable.
type TextSource struct {
	// Kind selects the populated variant.
	Kind SourceKind

	// Inline is the literal sentence (SourceInline only).
	Inline string

	// Path is the sentence file (SourceFile only).
	Path string
}

// InlineText returns a TextSource carrying a single literal sentence.
func InlineText(text string) TextSource {
	return TextSource{Kind: SourceInline, Inline: text}
}

// TextFile returns a TextSource reading sentences from path.
func TextFile(path string) TextSource {
	return TextSource{Kind: SourceFile, Path: path}
}

// NewTextSource builds the sentence source from raw flag values, enforcing
// that exactly one of the two is provided.
func NewTextSource(inline, path string) (TextSource, error) {
	switch {
	case inline == "" && path == "":
		return TextSource{}, fmt.Errorf("%w: provide a sentence or a sentence file", ErrMissingInput)
	case inline != "" && path != "":
		return TextSource{}, fmt.Errorf("%w: a sentence and a sentence file were both given", ErrConflictingInput)
	case inline != "":
		return InlineText(inline), nil
	default:
		return TextFile(path), nil
	}
}

// TargetSource is the tagged source for the target axis. As with TextSource,
// exactly one variant is populated.
type TargetSource struct {
	// Kind selects the populated variant.
	Kind SourceKind

	// Inline is the literal target list (SourceInline only). The list is one
	// group applying to a single sentence.
	Inline []string

	// Path is the targets file (SourceFile only). Each retained line carries
	// the comma-separated group for the corresponding sentence line.
	Path string
}

// InlineTargets returns a TargetSource carrying one literal target group.
func InlineTargets(targets []string) TargetSource {
	return TargetSource{Kind: SourceInline, Inline: targets}
}

// TargetsFile returns a TargetSource reading target groups from path.
func TargetsFile(path string) TargetSource {
	return TargetSource{Kind: SourceFile, Path: path}
}

// NewTargetSource builds the target source from raw flag values, enforcing
// that exactly one of the two is provided.
func NewTargetSource(inline []string, path string) (TargetSource, error) {
	switch {
	case len(inline) == 0 && path == "":
		return TargetSource{}, fmt.Errorf("%w: provide target phrases or a targets file", ErrMissingInput)
	case len(inline) > 0 && path != "":
		return TargetSource{}, fmt.Errorf("%w: target phrases and a targets file were both given", ErrConflictingInput)
	case len(inline) > 0:
		return InlineTargets(inline), nil
	default:
		return TargetsFile(path), nil
	}
}
