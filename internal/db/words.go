package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pgvector/pgvector-go"
)

const wordColumns = `id, public_id, headword, language, normalized, skeleton, signature, etymology, created_at, updated_at`

func scanWord(row pgx.Row) (Word, error) {
	var w Word
	err := row.Scan(
		&w.ID,
		&w.PublicID,
		&w.Headword,
		&w.Language,
		&w.Normalized,
		&w.Skeleton,
		&w.Signature,
		&w.Etymology,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	return w, err
}

// UpsertWordParams carries everything needed to insert or refresh a headword.
type UpsertWordParams struct {
	PublicID   string
	Headword   string
	Language   string
	Normalized string
	Skeleton   string
	Signature  pgvector.Vector
	Etymology  pgtype.Text
}

// UpsertWord inserts a headword or refreshes its derived forms when the
// (headword, language) pair already exists. The stored public_id survives
// updates.
func (q *Queries) UpsertWord(ctx context.Context, arg UpsertWordParams) (Word, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO words (public_id, headword, language, normalized, skeleton, signature, etymology)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (headword, language) DO UPDATE SET
			normalized = EXCLUDED.normalized,
			skeleton = EXCLUDED.skeleton,
			signature = EXCLUDED.signature,
			etymology = COALESCE(EXCLUDED.etymology, words.etymology),
			updated_at = now()
		RETURNING `+wordColumns,
		arg.PublicID,
		arg.Headword,
		arg.Language,
		arg.Normalized,
		arg.Skeleton,
		arg.Signature,
		arg.Etymology,
	)
	return scanWord(row)
}

// GetWordByPublicID fetches one word by its public nanoid.
func (q *Queries) GetWordByPublicID(ctx context.Context, publicID string) (Word, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+wordColumns+` FROM words WHERE public_id = $1`,
		publicID,
	)
	return scanWord(row)
}

// ListWordsParams pages through stored words, optionally per language.
type ListWordsParams struct {
	Language string
	Limit    int32
	Offset   int32
}

// ListWords returns stored words ordered by headword. An empty Language
// matches every language.
func (q *Queries) ListWords(ctx context.Context, arg ListWordsParams) ([]Word, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+wordColumns+` FROM words
		WHERE ($1 = '' OR language = $1)
		ORDER BY headword, language
		LIMIT $2 OFFSET $3`,
		arg.Language,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// CountWords returns the number of stored words, optionally per language.
func (q *Queries) CountWords(ctx context.Context, language string) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, `
		SELECT count(*) FROM words WHERE ($1 = '' OR language = $1)`,
		language,
	).Scan(&count)
	return count, err
}

// DeleteWordByPublicID removes a word and its morphemes (cascade). Returns
// the number of deleted rows.
func (q *Queries) DeleteWordByPublicID(ctx context.Context, publicID string) (int64, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM words WHERE public_id = $1`, publicID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// FindSimilarWordsParams selects the nearest stored words by signature
// cosine distance, excluding the word itself.
type FindSimilarWordsParams struct {
	WordID    int64
	Language  string
	Signature pgvector.Vector
	Limit     int32
}

// FindSimilarWords is the candidate prefilter for cognate search: cheap
// vector distance first, exact rescoring happens in Go.
func (q *Queries) FindSimilarWords(ctx context.Context, arg FindSimilarWordsParams) ([]Word, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+wordColumns+` FROM words
		WHERE id != $1 AND ($2 = '' OR language = $2)
		ORDER BY signature <=> $3
		LIMIT $4`,
		arg.WordID,
		arg.Language,
		arg.Signature,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// ReplaceWordMorphemes swaps the stored analysis of a word for a fresh one.
func (q *Queries) ReplaceWordMorphemes(ctx context.Context, wordID int64, morphemes []WordMorpheme) error {
	if _, err := q.db.Exec(ctx, `DELETE FROM word_morphemes WHERE word_id = $1`, wordID); err != nil {
		return err
	}
	for _, m := range morphemes {
		_, err := q.db.Exec(ctx, `
			INSERT INTO word_morphemes (word_id, text, type, meaning, position, length)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			wordID,
			m.Text,
			m.Type,
			m.Meaning,
			m.Position,
			m.Length,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetWordMorphemes returns the stored analysis of a word ordered by position.
func (q *Queries) GetWordMorphemes(ctx context.Context, wordID int64) ([]WordMorpheme, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, word_id, text, type, meaning, position, length
		FROM word_morphemes
		WHERE word_id = $1
		ORDER BY position`,
		wordID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var morphemes []WordMorpheme
	for rows.Next() {
		var m WordMorpheme
		if err := rows.Scan(&m.ID, &m.WordID, &m.Text, &m.Type, &m.Meaning, &m.Position, &m.Length); err != nil {
			return nil, err
		}
		morphemes = append(morphemes, m)
	}
	return morphemes, rows.Err()
}
