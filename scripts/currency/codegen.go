package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"
)

type currency struct {
	Name     string
	Code     string
	Num      string
	Decimals int
	Symbol   string
	Kind     string
}

func main() {
	recs, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %w", err))
	}

	currs, err := convertRecords(recs)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %w", err))
	}

	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %w", err))
	}

	if err := writeToFile("currency_data.go", code); err != nil {
		panic(fmt.Errorf("error writing to file: %w", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = 6
	if _, err := reader.Read(); err != nil { // header
		return nil, err
	}
	return reader.ReadAll()
}

// convertRecords validates the records and sorts them by code.
// Codes become Go type names, so they must be unique upper-case identifiers.
func convertRecords(recs [][]string) ([]currency, error) {
	sort.Slice(recs, func(i, j int) bool { return recs[i][1] < recs[j][1] })

	seen := map[string]bool{}
	currs := make([]currency, 0, len(recs))
	for _, rec := range recs {
		code := rec[1]
		if !isTypeName(code) {
			return nil, fmt.Errorf("code %q is not an upper-case identifier", code)
		}
		if seen[code] {
			return nil, fmt.Errorf("duplicate code %q", code)
		}
		seen[code] = true
		dec, err := strconv.Atoi(rec[3])
		if err != nil || dec < 0 || dec > 18 {
			return nil, fmt.Errorf("%v: invalid decimals %q", code, rec[3])
		}
		switch rec[5] {
		case "Fiat", "Crypto", "Commodity":
		default:
			return nil, fmt.Errorf("%v: unknown kind %q", code, rec[5])
		}
		currs = append(currs, currency{
			Name:     rec[0],
			Code:     code,
			Num:      rec[2],
			Decimals: dec,
			Symbol:   rec[4],
			Kind:     rec[5],
		})
	}
	return currs, nil
}

func isTypeName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}
	var output bytes.Buffer
	if err := tmpl.Execute(&output, currs); err != nil {
		return nil, err
	}
	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	if _, err := writer.Write(content); err != nil {
		return err
	}
	return writer.Flush()
}
