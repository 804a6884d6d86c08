package mapper

import (
	"dayplanner/internal/adapter/http/dto"
	"dayplanner/internal/core/domain"
)

func ToTimeBlockItems(blocks []domain.TimeBlock) []dto.TimeBlockItem {
	items := make([]dto.TimeBlockItem, 0, len(blocks))
	for _, block := range blocks {
		items = append(items, ToTimeBlockItem(block))
	}
	return items
}

// ToTimeBlockItem renders the block with its zone offset, so clients see the
// civil time the block was stored in.
func ToTimeBlockItem(block domain.TimeBlock) dto.TimeBlockItem {
	return dto.TimeBlockItem{
		ID:        block.ID,
		StartTime: formatTimestamp(block.Start),
		EndTime:   formatTimestamp(block.End),
	}
}
