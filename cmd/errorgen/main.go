package main

import (
	"context"

	"github.com/trustbooks/go-trust-ledger/internal/common/codegen/errorgen"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
)

var (
	fileLocation   = "./storages/errors-map.csv"
	templateFile   = "./internal/common/codegen/errorgen/error_map.tmpl"
	templateName   = "error_map.tmpl"
	outputLocation = "./internal/models/error_map.go"
)

func main() {
	ctx := context.Background()
	log.Init("errorgen")
	defer log.Sync()

	err := errorgen.GenerateErrorMapFromCSV(errorgen.Options{
		TemplateFile: templateFile,
		TemplateName: templateName,
		CSVFile:      fileLocation,
		OutputFile:   outputLocation,
	})
	if err != nil {
		log.Fatalf(ctx, "failed to generate error map: %v", err)
	}
	log.Infof(ctx, "writing file: %s", outputLocation)
}
