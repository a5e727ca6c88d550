package errorgen

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/iancoleman/strcase"
)

type (
	ErrorGen struct {
		ErrorMaps     []ErrorMap
		ErrorKeys     []ErrorKey
		ErrorMessages []ErrorMessage
		ErrorCodes    []ErrorCode
	}

	ErrorMap struct {
		Key     string
		Code    string
		Message string
	}

	ErrorKey struct {
		Key         string
		Description string
	}

	ErrorMessage struct {
		Key         string
		Description string
	}

	ErrorCode struct {
		Key         string
		Description string
	}
)

type Options struct {
	TemplateFile string
	TemplateName string
	CSVFile      string
	OutputFile   string
}

// GenerateErrorMapFromCSV renders the error map template with every row of the csv file
// (key,code,message) and writes the gofmt'ed result to the output file.
func GenerateErrorMapFromCSV(opts Options) error {
	csvFile, err := os.Open(opts.CSVFile)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer csvFile.Close()

	data, err := ParseErrorCSV(csvFile)
	if err != nil {
		return err
	}

	tmpl, err := template.New("").Funcs(sprig.TxtFuncMap()).ParseFiles(opts.TemplateFile)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	formatted, err := Render(tmpl, opts.TemplateName, data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(opts.OutputFile), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return os.WriteFile(opts.OutputFile, formatted, 0o644)
}

// ParseErrorCSV reads the error rows, skipping the header line. Codes and messages shared by
// several keys are declared once.
func ParseErrorCSV(r io.Reader) (ErrorGen, error) {
	csvLines, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return ErrorGen{}, fmt.Errorf("read csv: %w", err)
	}

	var (
		isExistErrorKey     = make(map[string]bool)
		isExistErrorMessage = make(map[string]bool)
		isExistErrorCode    = make(map[string]bool)
		data                ErrorGen
	)
	for i := 1; i < len(csvLines); i++ {
		if len(csvLines[i]) < 3 {
			return ErrorGen{}, fmt.Errorf("line %d: expected key,code,message", i+1)
		}
		key := strings.TrimSpace(csvLines[i][0])
		code := strings.TrimSpace(csvLines[i][1])
		message := strings.TrimSpace(csvLines[i][2])

		errKey := "ErrKey" + strcase.ToCamel(key)
		if isExistErrorKey[errKey] {
			return ErrorGen{}, fmt.Errorf("line %d: duplicate key %q", i+1, key)
		}
		isExistErrorKey[errKey] = true
		data.ErrorKeys = append(data.ErrorKeys, ErrorKey{
			Key:         errKey,
			Description: key,
		})

		errCodeKey := "errCode" + strcase.ToCamel(code)
		if !isExistErrorCode[errCodeKey] {
			data.ErrorCodes = append(data.ErrorCodes, ErrorCode{
				Key:         errCodeKey,
				Description: code,
			})
		}
		isExistErrorCode[errCodeKey] = true

		errMessageKey := "err" + strcase.ToCamel(message)
		if !isExistErrorMessage[errMessageKey] {
			data.ErrorMessages = append(data.ErrorMessages, ErrorMessage{
				Key:         errMessageKey,
				Description: message,
			})
		}
		isExistErrorMessage[errMessageKey] = true

		data.ErrorMaps = append(data.ErrorMaps, ErrorMap{
			Key:     errKey,
			Code:    errCodeKey,
			Message: errMessageKey,
		})
	}

	return data, nil
}

func Render(tmpl *template.Template, name string, data ErrorGen) ([]byte, error) {
	var processed bytes.Buffer
	if err := tmpl.ExecuteTemplate(&processed, name, data); err != nil {
		return nil, fmt.Errorf("unable to parse data into template: %w", err)
	}

	formatted, err := format.Source(processed.Bytes())
	if err != nil {
		return nil, fmt.Errorf("could not format processed template: %w", err)
	}
	return formatted, nil
}
