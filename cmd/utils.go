package cmd

import (
	"fmt"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/services"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/pkg/ui"
)

// pickDocument resolves a document either by query (first match wins) or via
// the interactive fuzzy picker when the query is empty. A nil document with a
// nil error means there was nothing to pick or the picker was dismissed.
func pickDocument(query string) (*domain.Document, error) {
	ctx := getContext()
	resp, err := listService.Execute(ctx, services.ListRequest{Query: query})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to load documents"))
		requireAuthHint(err)
		return nil, err
	}

	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No documents yet"))
		fmt.Println(ui.FormatInfo("Upload your first document with: docan upload <file>"))
		return nil, nil
	}
	if len(resp.Documents) == 0 {
		fmt.Println(ui.FormatWarning("No documents match: " + query))
		return nil, nil
	}

	if query != "" {
		return &resp.Documents[0], nil
	}

	docs := resp.Documents
	idx, err := fuzzyfinder.Find(
		docs,
		func(i int) string { return docs[i].Filename },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			d := docs[i]
			return fmt.Sprintf("Name: %s\nSize: %s\nStatus: %s\nUploaded: %s",
				d.Filename,
				domain.FormatSize(d.SizeBytes),
				d.Status,
				d.CreatedAt.Format(appConfig.DisplayDateFormat),
			)
		}),
	)
	if err != nil {
		// Dismissed the picker
		return nil, nil
	}
	return &docs[idx], nil
}
