package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func NewDownloader(logger *zap.Logger) *Downloader {
	return &Downloader{
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}
}

type Downloader struct {
	cli      *resty.Client
	log      *zap.Logger
	progress io.Writer
}

func (d *Downloader) Get(ctx context.Context, url string) ([]byte, error) {
	resp, err := d.cli.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.StatusCode() >= 400 {
		return nil, errors.Errorf("unexpected status %s", resp.Status())
	}

	var buf bytes.Buffer
	var dst io.Writer = &buf
	if d.progress != nil {
		bar := progressbar.NewOptions64(resp.RawResponse.ContentLength,
			progressbar.OptionSetWriter(d.progress),
			progressbar.OptionSetDescription(fmt.Sprintf("Downloading %s", url)),
			progressbar.OptionShowBytes(true),
		)
		defer func() {
			_ = bar.Finish()
		}()
		dst = io.MultiWriter(&buf, bar)
	}

	if _, err := io.Copy(dst, resp.RawBody()); err != nil {
		return nil, errors.Wrap(err, "read body failed")
	}

	d.log.With(zap.String("url", url), zap.Int("bytes", buf.Len())).Debug("downloaded")
	return buf.Bytes(), nil
}
