package executor

import (
	"context"
	"io"

	"mixplan/planner"
)

// FolderFile is one file within a folder workload, in the order it
// contributes bytes to the logical document.
type FolderFile struct {
	Name string
	Data []byte
}

// FolderInput is a pre-enumerated, size-sorted list of files treated as
// one logical document, per spec.md §1's directory-workload concept.
// Directory traversal and sorting happen outside this package — FolderInput
// only carries the already-ordered result — but the byte-partitioning
// arithmetic a split mix needs across that ordered list is in scope here.
type FolderInput struct {
	Files []FolderFile
}

// Concat returns the folder's files concatenated in order, the flat byte
// buffer Execute's split arithmetic operates on.
func (f FolderInput) Concat() []byte {
	var total int
	for _, file := range f.Files {
		total += len(file.Data)
	}

	out := make([]byte, 0, total)
	for _, file := range f.Files {
		out = append(out, file.Data...)
	}
	return out
}

// ExecuteFolder flattens folder into one byte buffer and runs Execute
// against it. Files earlier in folder.Files always land before files
// later in it, so a split boundary falling inside the folder always
// consumes whole files from the front before cutting into one.
func ExecuteFolder(ctx context.Context, folder FolderInput, mix planner.OptimalMix, sink io.Writer, dims *ImageDims) (Result, error) {
	return Execute(ctx, folder.Concat(), mix, sink, dims)
}
