package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-analytics/internal/scoring"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

var _ Repo = (*PGRepo)(nil)

const analysisSelect = `
SELECT a.id, a.user_id, a.resume_id, r.file_name, a.role, a.level,
       a.overall_score, a.skill_match_score, a.ats_score, a.length_score, a.word_count,
       a.extracted_skills, a.missing_skills, a.ats_issues, a.created_at
FROM analyses a
JOIN resumes r ON r.id = a.resume_id`

// Create inserts the analysis and its skill rows in one transaction.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := createWithTx(ctx, tx, analysis); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func createWithTx(ctx context.Context, tx *sql.Tx, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
	id, user_id, resume_id, role, level, overall_score, skill_match_score, ats_score,
	length_score, word_count, extracted_skills, missing_skills, ats_issues, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	extracted, err := marshalJSONB(analysis.ExtractedSkills, "{}")
	if err != nil {
		return fmt.Errorf("marshal extracted skills: %w", err)
	}
	missing, err := marshalJSONB(analysis.MissingSkills, "[]")
	if err != nil {
		return fmt.Errorf("marshal missing skills: %w", err)
	}
	findings, err := marshalJSONB(analysis.ATSFindings, "[]")
	if err != nil {
		return fmt.Errorf("marshal ats findings: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query,
		analysis.ID,
		analysis.UserID,
		analysis.ResumeID,
		analysis.Role,
		analysis.Level,
		analysis.OverallScore,
		analysis.SkillMatchScore,
		analysis.ATSScore,
		analysis.LengthScore,
		analysis.WordCount,
		extracted,
		missing,
		findings,
		analysis.CreatedAt,
	); err != nil {
		return err
	}

	const skillQuery = `
INSERT INTO analysis_skills (analysis_id, skill_name, category, proficiency)
VALUES ($1, $2, $3, $4)`
	for _, s := range analysis.Skills {
		if _, err := tx.ExecContext(ctx, skillQuery, analysis.ID, s.Name, s.Category, s.Proficiency); err != nil {
			return fmt.Errorf("insert skill %q: %w", s.Name, err)
		}
	}
	return nil
}

// GetByID returns an analysis with its skill rows.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = analysisSelect + `
WHERE a.id = $1
LIMIT 1`
	a, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, analysisID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}

	const skillQuery = `
SELECT skill_name, category, proficiency
FROM analysis_skills
WHERE analysis_id = $1
ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, skillQuery, analysisID)
	if err != nil {
		return Analysis{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var s SkillRow
		if err := rows.Scan(&s.Name, &s.Category, &s.Proficiency); err != nil {
			return Analysis{}, err
		}
		a.Skills = append(a.Skills, s)
	}
	return a, rows.Err()
}

// ListByUser returns analyses newest first. Skill rows are not loaded.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	limit, offset = clampPage(limit, offset)
	const query = analysisSelect + `
WHERE a.user_id = $1
ORDER BY a.created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var extracted, missing, findings []byte
	if err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.ResumeID,
		&a.FileName,
		&a.Role,
		&a.Level,
		&a.OverallScore,
		&a.SkillMatchScore,
		&a.ATSScore,
		&a.LengthScore,
		&a.WordCount,
		&extracted,
		&missing,
		&findings,
		&a.CreatedAt,
	); err != nil {
		return Analysis{}, err
	}
	a.ExtractedSkills = scoring.NewExtractedSkills()
	if len(extracted) > 0 {
		if err := json.Unmarshal(extracted, &a.ExtractedSkills); err != nil {
			return Analysis{}, fmt.Errorf("decode extracted skills: %w", err)
		}
	}
	if len(missing) > 0 {
		if err := json.Unmarshal(missing, &a.MissingSkills); err != nil {
			return Analysis{}, fmt.Errorf("decode missing skills: %w", err)
		}
	}
	if len(findings) > 0 {
		if err := json.Unmarshal(findings, &a.ATSFindings); err != nil {
			return Analysis{}, fmt.Errorf("decode ats findings: %w", err)
		}
	}
	return a, nil
}

func marshalJSONB(value any, empty string) ([]byte, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return []byte(empty), nil
	}
	return b, nil
}
