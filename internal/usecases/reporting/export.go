package reporting

import (
	"fmt"

	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheet     = "Ventas"
	exportDateTitle = "Fecha"
)

// ExportAggregatedDays gera uma planilha XLSX: cabeçalho Fecha + buckets, uma linha por dia
func ExportAggregatedDays(days []*domain.AggregatedDay) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, fmt.Errorf("erro ao renomear planilha: %w", err)
	}

	header := make([]interface{}, 0, len(domain.BucketNames)+1)
	header = append(header, exportDateTitle)
	for _, name := range domain.BucketNames {
		header = append(header, name)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar estilo: %w", err)
	}

	lastColumn, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return nil, err
	}

	if err := f.SetCellStyle(exportSheet, "A1", lastColumn+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("erro ao aplicar estilo: %w", err)
	}

	for i, day := range days {
		row := make([]interface{}, 0, len(header))
		row = append(row, day.Date)
		for _, value := range day.Values {
			row = append(row, value.InexactFloat64())
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("erro ao escrever linha %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", lastColumn, 22); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar xlsx: %w", err)
	}

	return buf.Bytes(), nil
}
