package exchange

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/klauspost/compress/zip"
	"github.com/ougirez/milkdigit/internal/domain"
	"github.com/ougirez/milkdigit/internal/domain/dto"
	"github.com/ougirez/milkdigit/internal/pkg/blob"
	"github.com/ougirez/milkdigit/internal/pkg/constants"
	"github.com/ougirez/milkdigit/internal/pkg/logger"
	"github.com/ougirez/milkdigit/internal/pkg/store"
	"github.com/xuri/excelize/v2"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	ArchiveName  = "Milk_Digitalization_all_csv.zip"
	WorkbookName = "Milk_Digitalization.xlsx"

	ContentTypeZIP  = "application/zip"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type uploadRoute struct {
	keywords []string
	resource store.Resource
}

// uploadRoutes is matched in order against the lower-cased file name.
var uploadRoutes = []uploadRoute{
	{keywords: []string{"product"}, resource: store.ResourceProducts},
	{keywords: []string{"sample"}, resource: store.ResourceSamples},
	{keywords: []string{"measure"}, resource: store.ResourceMeasurements},
	{keywords: []string{"vitamin", "amino"}, resource: store.ResourceVitamins},
	{keywords: []string{"storage"}, resource: store.ResourceStorage},
}

type Service struct {
	store store.Store
	sink  blob.Store
	now   func() time.Time
}

// NewExchangeService builds the upload/export service. sink may be nil when publishing is disabled.
func NewExchangeService(store store.Store, sink blob.Store) *Service {
	return &Service{store: store, sink: sink, now: time.Now}
}

// RouteUpload infers the destination store from an uploaded file name.
func RouteUpload(filename string) (store.Resource, error) {
	name := strings.ToLower(filepath.Base(filename))
	for _, route := range uploadRoutes {
		for _, kw := range route.keywords {
			if strings.Contains(name, kw) {
				return route.resource, nil
			}
		}
	}
	return "", constants.ErrUnrecognizedUpload
}

// Upload replaces the routed store with the content. Nothing is written when routing or parsing fails.
func (s *Service) Upload(ctx context.Context, filename string, data []byte) (dto.UploadResponse, error) {
	r, err := RouteUpload(filename)
	if err != nil {
		return dto.UploadResponse{}, err
	}

	t, err := s.store.Replace(ctx, r, data)
	if err != nil {
		return dto.UploadResponse{}, fmt.Errorf("upload %s: %w", filename, err)
	}

	logger.Info(ctx, "store replaced by upload", "store", r.FileName(), "rows", t.Len(), "encoding", t.Encoding)
	return dto.UploadResponse{Store: string(r), File: r.FileName(), Rows: t.Len()}, nil
}

// WriteZIP bundles the store files that exist, each under its base name.
func (s *Service) WriteZIP(ctx context.Context, w io.Writer) error {
	zw := zip.NewWriter(w)

	for _, r := range store.Resources {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := s.store.Path(r)
		st, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// скипаем
				continue
			}
			return err
		}

		if err = addFile(zw, path, st); err != nil {
			return fmt.Errorf("zip %s: %w", r.FileName(), err)
		}
	}

	return zw.Close()
}

func addFile(zw *zip.Writer, path string, st fs.FileInfo) error {
	hdr, err := zip.FileInfoHeader(st)
	if err != nil {
		return err
	}
	hdr.Name = filepath.Base(path)
	hdr.Method = zip.Deflate

	dst, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(dst, f)
	return err
}

// WriteXLSX renders every store as a sheet with its loaded header and rows.
func (s *Service) WriteXLSX(ctx context.Context, w io.Writer) error {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, r := range store.Resources {
		sheet := string(r)
		if i == 0 {
			if err = f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err = f.NewSheet(sheet); err != nil {
			return err
		}

		t := snap.Table(r)
		header := make([]interface{}, len(t.Columns))
		for j, c := range t.Columns {
			header[j] = c
		}
		if err = f.SetSheetRow(sheet, "A1", &header); err != nil {
			return err
		}

		for rowNo, row := range t.Rows {
			cells := make([]interface{}, len(row))
			for j, v := range row {
				cells[j] = cellValue(v)
			}
			cell, err := excelize.CoordinatesToCellName(1, rowNo+2)
			if err != nil {
				return err
			}
			if err = f.SetSheetRow(sheet, cell, &cells); err != nil {
				return err
			}
		}
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

// plain numbers are written as numbers, anything else as text
func cellValue(v string) interface{} {
	if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && strings.TrimSpace(v) != "" {
		return f
	}
	return v
}

// PublishKey is the blob key of an archive published at t.
func PublishKey(t time.Time) string {
	return fmt.Sprintf("exports/%s_%s", t.UTC().Format("20060102T150405Z"), ArchiveName)
}

// Publish uploads the current ZIP archive to the export sink.
func (s *Service) Publish(ctx context.Context) (blob.Info, error) {
	if s.sink == nil {
		return blob.Info{}, constants.ErrExportSinkDisabled
	}

	var buf bytes.Buffer
	if err := s.WriteZIP(ctx, &buf); err != nil {
		return blob.Info{}, err
	}

	key := PublishKey(s.now())
	info, err := s.sink.Put(ctx, key, bytes.NewReader(buf.Bytes()), blob.PutOptions{
		ContentType: ContentTypeZIP,
		Metadata:    map[string]string{"source": "milkdigit"},
	})
	if err != nil {
		return blob.Info{}, fmt.Errorf("publish %s: %w", key, err)
	}

	logger.Info(ctx, "export published", "driver", s.sink.Driver(), "key", info.Key, "size", info.Size)
	return info, nil
}

// Published lists archives already in the sink.
func (s *Service) Published(ctx context.Context) ([]blob.Info, error) {
	if s.sink == nil {
		return nil, constants.ErrExportSinkDisabled
	}
	return s.sink.List(ctx, "exports/")
}

// Status reports which stores are missing and how many rows each holds.
func (s *Service) Status(ctx context.Context) (domain.DataStatus, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return domain.DataStatus{}, err
	}

	status := domain.DataStatus{Dir: s.store.Dir(), Missing: []string{}}
	for _, r := range store.Resources {
		t := snap.Table(r)
		st := domain.StoreStatus{
			Name:     string(r),
			File:     r.FileName(),
			Missing:  t.Missing,
			Rows:     t.Len(),
			Encoding: t.Encoding,
		}
		if err := snap.Err(r); err != nil {
			st.Error = err.Error()
		}
		if t.Missing {
			status.Missing = append(status.Missing, r.FileName())
		}
		status.Stores = append(status.Stores, st)
	}

	return status, nil
}
