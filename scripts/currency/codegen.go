package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
)

type currency struct {
	Ident string
	Name  string
	Code  string
	Scale string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of currency objects
	currs, err := convertDataToCurrencies(data)
	if err != nil {
		panic(fmt.Errorf("error validating CSV file: %v", err))
	}

	// Generate Go code from the currency objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

// convertDataToCurrencies keeps the file order, since the row index becomes
// the enum value. The first row must be the sentinel with an empty code.
func convertDataToCurrencies(data [][]string) ([]currency, error) {
	if len(data) == 0 || data[0][2] != "" {
		return nil, fmt.Errorf("first record must be the sentinel with an empty code")
	}
	seen := map[string]bool{}
	currs := []currency{}
	for i, rec := range data {
		curr := currency{
			Ident: rec[0],
			Name:  rec[1],
			Code:  rec[2],
			Scale: rec[3],
		}
		if i > 0 && len(curr.Code) != 3 {
			return nil, fmt.Errorf("record %v: code %q must have 3 letters", i, curr.Code)
		}
		if seen[curr.Code] {
			return nil, fmt.Errorf("record %v: duplicate code %q", i, curr.Code)
		}
		seen[curr.Code] = true
		if _, err := strconv.ParseUint(curr.Scale, 10, 8); err != nil {
			return nil, fmt.Errorf("record %v: invalid scale %q", i, curr.Scale)
		}
		currs = append(currs, curr)
	}
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	// Create a new template object from the template file
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
