package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formdesk/pkg/registry"
	"github.com/goliatone/go-formdesk/pkg/validation"
)

func newLintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint [files...]",
		Short: "Check form documents against the document schema",
		Long: "Check form documents against the document schema and the registry rules.\n\n" +
			"Without arguments every document in the --forms directory is checked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				if a.cfg.Forms.Dir == "" {
					return errors.New("lint: pass files or --forms")
				}
				found, err := documentsIn(a.cfg.Forms.Dir)
				if err != nil {
					return err
				}
				files = found
			}
			if len(files) == 0 {
				return fmt.Errorf("lint: no form documents in %s", a.cfg.Forms.Dir)
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, file := range files {
				issues, err := lintFile(file)
				if err != nil {
					return err
				}
				if len(issues) == 0 {
					printf(out, "%s %s\n", styleOK.Render("OK"), file)
					continue
				}
				failed++
				printf(out, "%s %s\n", styleErr.Render("FAIL"), file)
				for _, issue := range issues {
					printf(out, "  %s\n", issue)
				}
			}
			if failed > 0 {
				return fmt.Errorf("lint: %d of %d document(s) failed", failed, len(files))
			}
			return nil
		},
	}
}

// lintFile returns one line per problem found in file.
func lintFile(file string) ([]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("lint: %w", err)
	}
	result := validation.ValidateDocument(file, data)
	if !result.Valid {
		issues := make([]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			issues = append(issues, issue.String())
		}
		return issues, nil
	}
	forms, err := registry.ParseDocument(file, data)
	if err != nil {
		return []string{err.Error()}, nil
	}
	if _, err := registry.New(forms...); err != nil {
		return []string{err.Error()}, nil
	}
	return nil, nil
}

func documentsIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("lint: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !registry.IsDocument(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
