package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
	"github.com/noah-isme/scholarship-portal-api/pkg/export"
	"github.com/noah-isme/scholarship-portal-api/pkg/storage"
)

type rankingSource interface {
	Get(ctx context.Context, token string, id int) (*models.Ranking, error)
}

type rosterSource interface {
	Get(ctx context.Context, token string, id int) (*models.PaymentRoster, error)
}

type fileStorage interface {
	Save(relPath string, data []byte) (string, error)
	Open(relPath string) (*os.File, error)
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type urlSigner interface {
	Sign(artifactID, relPath string) (string, time.Time, error)
	Verify(token string) (storage.Grant, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// Artifact is an opened export ready to stream.
type Artifact struct {
	File        *os.File
	Filename    string
	ContentType string
}

// ExportService renders ranking and roster datasets into downloadable files.
type ExportService struct {
	rankings  rankingSource
	rosters   rosterSource
	storage   fileStorage
	signer    urlSigner
	renderers map[dto.ExportFormat]export.Renderer
	json      *export.JSONExporter
	cfg       ExportConfig
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService constructs an ExportService with every renderer wired.
func NewExportService(rankings rankingSource, rosters rosterSource, store fileStorage, signer urlSigner, cfg ExportConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	jsonRenderer := export.NewJSONExporter()
	return &ExportService{
		rankings: rankings,
		rosters:  rosters,
		storage:  store,
		signer:   signer,
		renderers: map[dto.ExportFormat]export.Renderer{
			dto.ExportFormatCSV:  export.NewCSVExporter(),
			dto.ExportFormatPDF:  export.NewPDFExporter(),
			dto.ExportFormatXLSX: export.NewXLSXExporter(),
			dto.ExportFormatJSON: jsonRenderer,
		},
		json:   jsonRenderer,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// ExportRanking renders a ranking with its ordered applications.
func (s *ExportService) ExportRanking(ctx context.Context, token string, id int, format dto.ExportFormat) (*dto.ExportResult, error) {
	if id <= 0 {
		return nil, appErrors.ErrRankingNotSelected
	}
	renderer, err := s.renderer(format)
	if err != nil {
		return nil, err
	}
	ranking, err := s.rankings.Get(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if ranking == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "ranking not found")
	}
	return s.store(renderer, "ranking_"+strconv.Itoa(id), rankingDataset(ranking))
}

// ExportRoster renders a payment roster.
func (s *ExportService) ExportRoster(ctx context.Context, token string, id int, format dto.ExportFormat) (*dto.ExportResult, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid roster id")
	}
	renderer, err := s.renderer(format)
	if err != nil {
		return nil, err
	}
	roster, err := s.rosters.Get(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if roster == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "roster not found")
	}
	return s.store(renderer, "roster_"+sanitizeFilename(roster.RosterCode), rosterDataset(roster))
}

// ExportSnapshot stores a workflow snapshot as JSON.
func (s *ExportService) ExportSnapshot(snapshot *models.WorkflowSnapshot) (*dto.ExportResult, error) {
	if snapshot == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "snapshot is empty")
	}
	payload, err := s.json.RenderValue(snapshot)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render snapshot")
	}
	base := fmt.Sprintf("workflow_%d_%d_%s", snapshot.ScholarshipTypeID, snapshot.AcademicYear, sanitizeFilename(snapshot.Semester))
	return s.persist(base, dto.ExportFormatJSON, payload)
}

// Open resolves a signed token to the stored file.
func (s *ExportService) Open(token string) (*Artifact, error) {
	grant, err := s.signer.Verify(token)
	switch {
	case errors.Is(err, storage.ErrTokenExpired):
		return nil, appErrors.Clone(appErrors.ErrNotFound, "download link expired")
	case err != nil:
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid download token")
	}
	file, err := s.storage.Open(grant.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "export not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "open export")
	}
	return &Artifact{File: file, Filename: baseName(grant.Path), ContentType: contentTypeFor(grant.Path, s.renderers)}, nil
}

// Cleanup removes stored exports older than ttl, defaulting to ResultTTL.
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

func (s *ExportService) renderer(format dto.ExportFormat) (export.Renderer, error) {
	if format == "" {
		format = dto.ExportFormatXLSX
	}
	renderer, ok := s.renderers[dto.ExportFormat(strings.ToLower(string(format)))]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
	return renderer, nil
}

func (s *ExportService) store(renderer export.Renderer, base string, data export.Dataset) (*dto.ExportResult, error) {
	payload, err := renderer.Render(data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render export")
	}
	return s.persist(base, dto.ExportFormat(renderer.Extension()), payload)
}

func (s *ExportService) persist(base string, format dto.ExportFormat, payload []byte) (*dto.ExportResult, error) {
	id := uuid.NewString()
	// the artifact id keeps same-second exports of one source apart
	filename := fmt.Sprintf("%s_%s_%s.%s", base, s.now().UTC().Format("20060102_150405"), id, format)
	relPath, err := s.storage.Save(filename, payload)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "store export")
	}
	token, expiresAt, err := s.signer.Sign(id, relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "sign export")
	}
	prefix := strings.TrimRight(s.cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api/v1"
	}
	s.logger.Info("export stored", zap.String("path", relPath), zap.String("format", string(format)))
	return &dto.ExportResult{
		Filename:  filename,
		Format:    format,
		URL:       prefix + "/exports/" + token,
		ExpiresAt: expiresAt,
	}, nil
}

func rankingDataset(r *models.Ranking) export.Dataset {
	title := r.RankingName
	if title == "" {
		title = fmt.Sprintf("Ranking %d (%s)", r.ID, r.SubTypeCode)
	}
	rows := make([][]string, 0, len(r.Items))
	for _, item := range r.Items {
		rows = append(rows, []string{
			strconv.Itoa(item.Rank),
			item.AppID,
			item.StudentID,
			item.StudentName,
			strconv.FormatFloat(item.Score, 'f', 2, 64),
			string(item.Status),
			item.AllocatedSubType,
		})
	}
	return export.Dataset{
		Title:   title,
		Sheet:   "Ranking",
		Headers: []string{"Rank", "Application", "Student ID", "Student", "Score", "Status", "Allocated Sub-type"},
		Rows:    rows,
	}
}

func rosterDataset(r *models.PaymentRoster) export.Dataset {
	rows := make([][]string, 0, len(r.Items))
	for _, item := range r.Items {
		qualified := "N"
		if item.IsQualified {
			qualified = "Y"
		}
		rows = append(rows, []string{
			strconv.Itoa(item.ApplicationID),
			item.StudentID,
			item.StudentName,
			item.BankAccount,
			strconv.FormatFloat(item.Amount, 'f', 0, 64),
			qualified,
			item.Note,
		})
	}
	return export.Dataset{
		Title:   fmt.Sprintf("Payment roster %s (%s)", r.RosterCode, r.PeriodLabel),
		Sheet:   "Roster",
		Headers: []string{"Application", "Student ID", "Student", "Bank Account", "Amount", "Qualified", "Note"},
		Rows:    rows,
	}
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}

func baseName(relPath string) string {
	if i := strings.LastIndex(relPath, "/"); i >= 0 {
		return relPath[i+1:]
	}
	return relPath
}

func contentTypeFor(relPath string, renderers map[dto.ExportFormat]export.Renderer) string {
	if i := strings.LastIndex(relPath, "."); i >= 0 {
		if r, ok := renderers[dto.ExportFormat(relPath[i+1:])]; ok {
			return r.ContentType()
		}
	}
	return "application/octet-stream"
}
