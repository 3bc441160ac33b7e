package conversion

import "tempconv/internal/models"

// Describe builds the presentation view of a conversion record.
func Describe(rec models.ConversionRecord) models.Conversion {
	return models.Conversion{
		Record:            rec,
		InputDisplay:      FormatValue(rec.InputValue),
		ResultDisplay:     FormatValue(rec.ResultValue),
		SourceSymbol:      SymbolOf(rec.SourceScale),
		TargetSymbol:      SymbolOf(rec.TargetScale),
		InputColor:        ColorOf(rec.InputValue, rec.SourceScale),
		ResultColor:       ColorOf(rec.ResultValue, rec.TargetScale),
		IndicatorPosition: IndicatorPosition(rec.ResultValue, rec.TargetScale),
	}
}

// Row builds a history row for rec.
func Row(rec models.ConversionRecord, editing bool) models.HistoryRow {
	return models.HistoryRow{
		Record:        rec,
		Editing:       editing,
		InputDisplay:  FormatValue(rec.InputValue),
		ResultDisplay: FormatValue(rec.ResultValue),
		SourceSymbol:  SymbolOf(rec.SourceScale),
		TargetSymbol:  SymbolOf(rec.TargetScale),
		InputColor:    ColorOf(rec.InputValue, rec.SourceScale),
		ResultColor:   ColorOf(rec.ResultValue, rec.TargetScale),
	}
}
