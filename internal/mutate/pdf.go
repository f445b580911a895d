package mutate

import (
	"github.com/YannErmes/langlearn/internal"
	"github.com/YannErmes/langlearn/internal/storage"
)

// AddPdfPath prepends a new PDF reference and returns the new document and
// the generated id. The store never inspects the file itself.
func AddPdfPath(doc storage.AppData, path, name string) (storage.AppData, string) {
	ref := storage.PdfPath{
		ID:      internal.GenerateID(path),
		Path:    path,
		Name:    name,
		AddedAt: timestamp(),
	}
	doc.PdfPaths = append([]storage.PdfPath{ref}, doc.PdfPaths...)
	return doc, ref.ID
}

// DeletePdfPath removes the PDF reference with the given id.
func DeletePdfPath(doc storage.AppData, id string) storage.AppData {
	paths := make([]storage.PdfPath, 0, len(doc.PdfPaths))
	for _, p := range doc.PdfPaths {
		if p.ID != id {
			paths = append(paths, p)
		}
	}
	doc.PdfPaths = paths
	return doc
}
