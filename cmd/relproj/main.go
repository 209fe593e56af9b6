package main

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/yashagw/relscan/internal/query"
	"github.com/yashagw/relscan/internal/relation"
	"github.com/yashagw/relscan/internal/value"
)

func main() {
	filePath := flag.String("file", "", "CSV file with a header row")
	cols := flag.String("cols", "", "comma-separated column indexes to project (default: all)")
	distinct := flag.Bool("distinct", false, "eliminate duplicate output rows")
	flag.Parse()

	if *filePath == "" {
		log.Fatalf("No input file specified, use -file")
	}

	rel, err := loadCSV(*filePath)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *filePath, err)
	}

	indexes, err := parseIndexes(*cols, rel.NumColumns())
	if err != nil {
		log.Fatalf("Bad -cols value: %v", err)
	}

	proj, err := query.Project(rel, *distinct, indexes...)
	if err != nil {
		log.Fatalf("Failed to build projection: %v", err)
	}

	writer := bufio.NewWriter(os.Stdout)
	for {
		ok, err := proj.Next()
		if err != nil {
			log.Fatalf("Failed to advance: %v", err)
		}
		if !ok {
			break
		}

		row := make(map[string]interface{})
		for i := 0; i < proj.NumColumns(); i++ {
			col, err := proj.Column(i)
			if err != nil {
				log.Fatalf("Failed to get column %d: %v", i, err)
			}
			val, err := proj.Value(i)
			if err != nil {
				log.Fatalf("Failed to get value %d: %v", i, err)
			}
			row[col.Name()] = nativeValue(val)
		}

		jsonData, err := json.Marshal(row)
		if err != nil {
			log.Fatalf("Failed to serialize row: %v", err)
		}
		writer.Write(jsonData)
		writer.WriteString("\n")
	}
	writer.Flush()

	numTuples := proj.NumTuples()
	if err := proj.Close(); err != nil {
		log.Printf("Error closing projection: %v", err)
	}
	log.Printf("%d tuples", numTuples)
}

func nativeValue(val *value.Constant) interface{} {
	switch {
	case val.IsInt():
		return val.AsInt()
	case val.IsFloat():
		return val.AsFloat()
	default:
		return val.AsString()
	}
}

// parseIndexes parses the -cols flag. An empty value selects every column in
// schema order.
func parseIndexes(cols string, numColumns int) ([]int, error) {
	if cols == "" {
		indexes := make([]int, numColumns)
		for i := range indexes {
			indexes[i] = i
		}
		return indexes, nil
	}

	parts := strings.Split(cols, ",")
	indexes := make([]int, len(parts))
	for i, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid column index %q: %w", part, err)
		}
		indexes[i] = idx
	}
	return indexes, nil
}

// loadCSV reads a CSV file whose first row names the columns and builds an
// in-memory relation from it. Each column's type is inferred: int if every
// cell parses as an integer, float if every cell parses as a number, string
// otherwise.
func loadCSV(path string) (*relation.MemoryIterator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	header := records[0]
	cells := records[1:]

	schema := relation.NewSchema()
	types := make([]string, len(header))
	for i, name := range header {
		types[i] = inferType(cells, i)
		schema.AddField(name, types[i])
	}

	rows := make([][]*value.Constant, len(cells))
	for i, record := range cells {
		if len(record) != len(header) {
			return nil, fmt.Errorf("row %d has %d cells, header has %d", i+1, len(record), len(header))
		}
		row := make([]*value.Constant, len(record))
		for j, cell := range record {
			switch types[j] {
			case relation.TypeInt:
				n, err := strconv.Atoi(cell)
				if err != nil {
					return nil, fmt.Errorf("row %d, column %q: %w", i+1, header[j], err)
				}
				row[j] = value.NewIntConstant(n)
			case relation.TypeFloat:
				n, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return nil, fmt.Errorf("row %d, column %q: %w", i+1, header[j], err)
				}
				row[j] = value.NewFloatConstant(n)
			default:
				row[j] = value.NewStringConstant(cell)
			}
		}
		rows[i] = row
	}

	return relation.NewMemoryIterator(schema, rows)
}

func inferType(cells [][]string, col int) string {
	allInt := true
	allFloat := true
	for _, record := range cells {
		if col >= len(record) {
			continue
		}
		if _, err := strconv.Atoi(record[col]); err != nil {
			allInt = false
		}
		if _, err := strconv.ParseFloat(record[col], 64); err != nil {
			allFloat = false
		}
	}
	switch {
	case len(cells) == 0:
		return relation.TypeString
	case allInt:
		return relation.TypeInt
	case allFloat:
		return relation.TypeFloat
	default:
		return relation.TypeString
	}
}
