package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"loomschema/internal/logging"
	"loomschema/internal/schema"
	"loomschema/internal/schemas"
	"loomschema/internal/version"
)

// outputDir is the conventional location for generated schema documents.
const outputDir = "schemas"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(errOut, "usage: loomschema")
		return exitCodeUsage
	}

	logger := logging.NewLoggerWithOutput(logging.LevelInfo, errOut)
	logger.Info("generating schema documents", map[string]string{
		"version": version.String(),
		"dir":     outputDir,
	})
	return generate(outputDir, out, logger)
}

func generate(dir string, out io.Writer, logger *logging.Logger) int {
	names := schemas.DocumentNames()
	for _, name := range names {
		path, err := generateDocument(dir, name)
		if err != nil {
			logger.Error("schema generation failed", map[string]string{
				"document": name,
				"error":    err.Error(),
			})
			return exitCodeGenerateFailed
		}
		fmt.Fprintln(out, path)
	}
	logger.Info("schema documents written", map[string]string{
		"count": strconv.Itoa(len(names)),
	})
	return exitCodeSuccess
}

func generateDocument(dir, name string) (string, error) {
	document, err := schemas.DocumentFor(name)
	if err != nil {
		return "", err
	}
	definition, err := schemas.SchemaFor(name)
	if err != nil {
		return "", err
	}
	tree, err := schema.DefinitionTree(definition)
	if err != nil {
		return "", err
	}
	normalized, err := schema.Normalize(tree, schema.NormalizeOptions{
		ID:          document.ID,
		Title:       document.Title,
		Description: document.Description,
	})
	if err != nil {
		return "", err
	}
	return schema.Write(dir, document.FileName, normalized)
}
