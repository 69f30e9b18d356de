package regexparse

import (
	"log/slog"

	"github.com/parte-archiv/parte-tracker/constants"
	"github.com/parte-archiv/parte-tracker/internal/entity"
)

// Parse runs the local extraction heuristics over OCR text and returns
// whatever fields could be recovered. Fields that no pattern matched stay
// empty; the caller decides whether the result is good enough or whether a
// vision provider takes over.
func Parse(logger *slog.Logger, text string, mode constants.ExtractionMode) entity.ExtractionResult {
	var res entity.ExtractionResult

	res.DeathDate = FindDeathDate(logger, text)
	if mode == constants.ModeFull {
		res.FullName = FindName(text)
		res.FuneralDate = FindFuneralDate(logger, text)
	}

	// Positional fallback: when no keyword anchored any date, bare numeric
	// dates are assigned by order of appearance. Two or more dates read as
	// death then funeral; a single date is taken as the funeral date, since
	// notices announcing only one date almost always announce the ceremony.
	if res.DeathDate == "" && res.FuneralDate == "" {
		if dates := FindAllNumericDates(logger, text); len(dates) >= 2 {
			res.DeathDate = dates[0]
			if mode == constants.ModeFull {
				res.FuneralDate = dates[1]
			}
		} else if len(dates) == 1 && mode == constants.ModeFull {
			res.FuneralDate = dates[0]
		}
	}

	logger.Debug("regexparse.parse.done",
		"mode", string(mode),
		"name_found", res.FullName != "",
		"death_date_found", res.DeathDate != "",
		"funeral_date_found", res.FuneralDate != "")
	return res
}
