package lexicon

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pgvector/pgvector-go"

	"github.com/lexicaforge/backend/internal/db"
	"github.com/lexicaforge/backend/internal/util"
	"github.com/lexicaforge/backend/pkg/morphemes"
	"github.com/lexicaforge/backend/pkg/signature"
	"github.com/lexicaforge/backend/pkg/strdist"
)

// StoreWord derives the comparison forms and morpheme analysis of a headword
// and persists everything in one transaction. Re-storing an existing
// (headword, language) pair refreshes its derived forms.
func StoreWord(
	ctx context.Context,
	conn *pgxpool.Pool,
	analyzer *morphemes.Analyzer,
	language string,
	headword string,
	etymologyText string,
) (db.Word, error) {
	normalized := strdist.Normalize(headword)
	if normalized == "" {
		return db.Word{}, fmt.Errorf("headword %q normalizes to nothing", headword)
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return db.Word{}, fmt.Errorf("failed to generate word ID: %w", err)
	}

	etymology := pgtype.Text{}
	if etymologyText != "" {
		etymology = pgtype.Text{String: util.SanitizePostgresText(etymologyText), Valid: true}
	}

	analysis := analyzer.Analyze(headword)

	tx, err := conn.Begin(ctx)
	if err != nil {
		return db.Word{}, err
	}
	defer tx.Rollback(ctx)
	qtx := db.New(conn).WithTx(tx)

	stored, err := qtx.UpsertWord(ctx, db.UpsertWordParams{
		PublicID:   publicID,
		Headword:   headword,
		Language:   language,
		Normalized: normalized,
		Skeleton:   strdist.ConsonantSkeleton(normalized),
		Signature:  pgvector.NewVector(signature.Vector(normalized)),
		Etymology:  etymology,
	})
	if err != nil {
		return db.Word{}, fmt.Errorf("failed to upsert word: %w", err)
	}

	rows := make([]db.WordMorpheme, 0, len(analysis.Morphemes))
	for _, m := range analysis.Morphemes {
		meaning := pgtype.Text{}
		if m.Meaning != "" {
			meaning = pgtype.Text{String: m.Meaning, Valid: true}
		}
		rows = append(rows, db.WordMorpheme{
			WordID:   stored.ID,
			Text:     m.Text,
			Type:     m.Type,
			Meaning:  meaning,
			Position: int32(m.Position),
			Length:   int32(m.Length),
		})
	}
	if err := qtx.ReplaceWordMorphemes(ctx, stored.ID, rows); err != nil {
		return db.Word{}, fmt.Errorf("failed to store morphemes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return db.Word{}, err
	}
	return stored, nil
}
