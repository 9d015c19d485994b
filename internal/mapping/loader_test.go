package mapping

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ldavies/renamekit/internal/logbook"
)

func writeWorkbook(t *testing.T, header []string, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for i := range rows {
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, ref, &rows[i]); err != nil {
			t.Fatalf("write row %d: %v", i, err)
		}
	}
	path := filepath.Join(t.TempDir(), "mapping.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestLoadBuildsTable(t *testing.T) {
	path := writeWorkbook(t,
		[]string{ColumnCurrent, ColumnNew},
		[][]string{
			{"a.txt", "alpha.txt"},
			{"b.txt", "beta.txt"},
			{"c.txt", "gamma.txt"},
		},
	)
	table, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("len(table) = %d, want 3", len(table))
	}
	if table["b.txt"] != "beta.txt" {
		t.Fatalf("table[b.txt] = %q, want beta.txt", table["b.txt"])
	}
}

func TestLoadIgnoresColumnOrderAndExtras(t *testing.T) {
	path := writeWorkbook(t,
		[]string{"Owner", ColumnNew, ColumnCurrent},
		[][]string{{"finance", "new.txt", "old.txt"}},
	)
	table, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if table["old.txt"] != "new.txt" {
		t.Fatalf("table[old.txt] = %q, want new.txt", table["old.txt"])
	}
}

func TestLoadDuplicateKeyKeepsLastRowAndWarns(t *testing.T) {
	log, err := logbook.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open logbook: %v", err)
	}
	defer log.Close()

	path := writeWorkbook(t,
		[]string{ColumnCurrent, ColumnNew},
		[][]string{
			{"a.txt", "first.txt"},
			{"a.txt", "second.txt"},
		},
	)
	table, err := Load(path, log)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("len(table) = %d, want 1", len(table))
	}
	if table["a.txt"] != "second.txt" {
		t.Fatalf("table[a.txt] = %q, want second.txt", table["a.txt"])
	}
	warned := false
	for _, line := range log.Tail(10) {
		if strings.Contains(line, "WARN") && strings.Contains(line, "Duplicate mapping") {
			warned = true
		}
	}
	if !warned {
		t.Fatal("no WARN line for duplicate mapping key")
	}
}

func TestLoadSkipsBlankRows(t *testing.T) {
	path := writeWorkbook(t,
		[]string{ColumnCurrent, ColumnNew},
		[][]string{
			{"a.txt", "alpha.txt"},
			{"", ""},
		},
	)
	table, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("len(table) = %d, want 1", len(table))
	}
}

func TestLoadMissingColumnFails(t *testing.T) {
	path := writeWorkbook(t,
		[]string{ColumnCurrent, "Renamed"},
		[][]string{{"a.txt", "alpha.txt"}},
	)
	_, err := Load(path, nil)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("err = %v, want ErrMissingColumn", err)
	}
	if !strings.Contains(err.Error(), ColumnNew) {
		t.Fatalf("err = %v, should name the missing column", err)
	}
}

func TestLoadUnreadableWorkbookFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.xlsx"), nil)
	if err == nil {
		t.Fatal("load of absent workbook succeeded, want error")
	}
}
