package tourapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pribylovaa/go-tour-aggregator/internal/models"
)

// DefaultBaseURL — базовый адрес KorService2.
const DefaultBaseURL = "https://apis.data.go.kr/B551011/KorService2"

const (
	defaultPageSize     = 12
	defaultAreaPageSize = 50
)

// Пути эндпойнтов KorService2.
const (
	pathAreaCodes = "areaCode2"
	pathAreaList  = "areaBasedList2"
	pathSearch    = "searchKeyword2"
	pathDetail    = "detailCommon2"
	pathIntro     = "detailIntro2"
	pathImages    = "detailImage2"
	pathPetInfo   = "detailPetTour2"
)

// Client — типизированный клиент TourAPI: по операции на эндпойнт.
//
// Все операции read-only и идемпотентны, поэтому свободно сочетаются
// со встроенными ретраями транспорта. Клиент не хранит состояния между
// вызовами и безопасен при конкурентном использовании.
type Client struct {
	transport *Transport
	creds     CredentialSource
	baseURL   string
	appName   string
}

// Options — параметры сборки клиента.
type Options struct {
	// HTTPClient — низлежащий HTTP-клиент; nil — дефолтный.
	HTTPClient Doer
	// Credentials — источник сервисного ключа. Обязателен.
	Credentials CredentialSource
	// BaseURL — база апстрима; пустая строка — DefaultBaseURL.
	BaseURL string
	// AppName — значение общего параметра MobileApp.
	AppName string
}

// NewClient создаёт клиент TourAPI.
func NewClient(opts Options) (*Client, error) {
	if opts.Credentials == nil {
		return nil, fmt.Errorf("tourapi: Credentials is nil")
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	appName := opts.AppName
	if appName == "" {
		appName = "go-tour-aggregator"
	}

	return &Client{
		transport: NewTransport(opts.HTTPClient),
		creds:     opts.Credentials,
		baseURL:   baseURL,
		appName:   appName,
	}, nil
}

// ListParams — параметры списковых операций.
// Пустые строковые поля не попадают в query.
type ListParams struct {
	AreaCode      string
	ContentTypeID string
	PageSize      int
	PageNo        int
}

func (p ListParams) normalized(defaultSize int) ListParams {
	if p.PageSize <= 0 {
		p.PageSize = defaultSize
	}
	if p.PageNo <= 0 {
		p.PageNo = 1
	}
	return p
}

// AreaCodes возвращает справочник регионов первого уровня.
func (c *Client) AreaCodes(ctx context.Context, pageSize, pageNo int) ([]models.AreaCode, error) {
	const op = "tourapi.AreaCodes"

	p := ListParams{PageSize: pageSize, PageNo: pageNo}.normalized(defaultAreaPageSize)

	q := url.Values{}
	q.Set("numOfRows", strconv.Itoa(p.PageSize))
	q.Set("pageNo", strconv.Itoa(p.PageNo))

	body, err := c.get(ctx, pathAreaCodes, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pg, err := parsePage[areaCodeItem](body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	codes := make([]models.AreaCode, 0, len(pg.Items))
	for _, it := range pg.Items {
		codes = append(codes, models.AreaCode{Code: it.Code, Name: it.Name})
	}

	return codes, nil
}

// ListByArea возвращает страницу записей с опциональной фильтрацией
// по региону и типу контента.
func (c *Client) ListByArea(ctx context.Context, params ListParams) (*models.TourListResult, error) {
	const op = "tourapi.ListByArea"

	p := params.normalized(defaultPageSize)

	q := url.Values{}
	q.Set("numOfRows", strconv.Itoa(p.PageSize))
	q.Set("pageNo", strconv.Itoa(p.PageNo))
	q.Set("arrange", "C")
	setIfNotEmpty(q, "areaCode", p.AreaCode)
	setIfNotEmpty(q, "contentTypeId", p.ContentTypeID)

	body, err := c.get(ctx, pathAreaList, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.listResult(op, body, p)
}

// SearchByKeyword возвращает страницу записей по ключевому слову.
//
// Ошибки:
//   - KindValidation — пустое (после TrimSpace) ключевое слово;
//     запрос к апстриму не выполняется.
func (c *Client) SearchByKeyword(ctx context.Context, keyword string, params ListParams) (*models.TourListResult, error) {
	const op = "tourapi.SearchByKeyword"

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%s: %w", op, newError(KindValidation, "keyword must not be empty", nil))
	}

	p := params.normalized(defaultPageSize)

	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("numOfRows", strconv.Itoa(p.PageSize))
	q.Set("pageNo", strconv.Itoa(p.PageNo))
	q.Set("arrange", "C")
	setIfNotEmpty(q, "areaCode", p.AreaCode)
	setIfNotEmpty(q, "contentTypeId", p.ContentTypeID)

	body, err := c.get(ctx, pathSearch, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.listResult(op, body, p)
}

// Detail возвращает общую карточку записи.
//
// Ошибки:
//   - KindValidation — пустой contentID;
//   - KindAPI + ErrNoResults — апстрим не нашёл запись.
func (c *Client) Detail(ctx context.Context, contentID string) (*models.TourDetail, error) {
	const op = "tourapi.Detail"

	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return nil, fmt.Errorf("%s: %w", op, newError(KindValidation, "contentID must not be empty", nil))
	}

	q := url.Values{}
	q.Set("contentId", contentID)

	body, err := c.get(ctx, pathDetail, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pg, err := parsePage[detailItem](body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(pg.Items) == 0 {
		return nil, fmt.Errorf("%s: %w", op, notFound(contentID))
	}

	d := pg.Items[0].toModel()
	return &d, nil
}

// Intro возвращает интро-блок записи (поля зависят от типа контента).
//
// Ошибки:
//   - KindValidation — пустой contentID либо contentTypeID;
//   - KindAPI + ErrNoResults — апстрим не нашёл запись.
func (c *Client) Intro(ctx context.Context, contentID, contentTypeID string) (*models.TourIntro, error) {
	const op = "tourapi.Intro"

	contentID = strings.TrimSpace(contentID)
	contentTypeID = strings.TrimSpace(contentTypeID)
	if contentID == "" {
		return nil, fmt.Errorf("%s: %w", op, newError(KindValidation, "contentID must not be empty", nil))
	}
	if contentTypeID == "" {
		return nil, fmt.Errorf("%s: %w", op, newError(KindValidation, "contentTypeID must not be empty", nil))
	}

	q := url.Values{}
	q.Set("contentId", contentID)
	q.Set("contentTypeId", contentTypeID)

	body, err := c.get(ctx, pathIntro, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pg, err := parsePage[introItem](body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(pg.Items) == 0 {
		return nil, fmt.Errorf("%s: %w", op, notFound(contentID))
	}

	in := pg.Items[0].toModel()
	return &in, nil
}

// Images возвращает страницу изображений записи.
// Пустая выдача — валидный результат (не у всех записей есть фото).
func (c *Client) Images(ctx context.Context, contentID string, pageSize, pageNo int) (*models.TourImageResult, error) {
	const op = "tourapi.Images"

	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return nil, fmt.Errorf("%s: %w", op, newError(KindValidation, "contentID must not be empty", nil))
	}

	p := ListParams{PageSize: pageSize, PageNo: pageNo}.normalized(defaultPageSize)

	q := url.Values{}
	q.Set("contentId", contentID)
	q.Set("imageYN", "Y")
	q.Set("numOfRows", strconv.Itoa(p.PageSize))
	q.Set("pageNo", strconv.Itoa(p.PageNo))

	body, err := c.get(ctx, pathImages, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pg, err := parsePage[imageItem](body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := &models.TourImageResult{
		Items:      make([]models.TourImage, 0, len(pg.Items)),
		TotalCount: pg.TotalCount,
	}
	for _, it := range pg.Items {
		out.Items = append(out.Items, it.toModel())
	}

	return out, nil
}

// PetInfo возвращает информацию о посещении записи с питомцами.
//
// Ошибки:
//   - KindValidation — пустой contentID;
//   - KindAPI + ErrNoResults — данных для записи нет.
func (c *Client) PetInfo(ctx context.Context, contentID string) (*models.PetTourInfo, error) {
	const op = "tourapi.PetInfo"

	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return nil, fmt.Errorf("%s: %w", op, newError(KindValidation, "contentID must not be empty", nil))
	}

	q := url.Values{}
	q.Set("contentId", contentID)

	body, err := c.get(ctx, pathPetInfo, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pg, err := parsePage[petItem](body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(pg.Items) == 0 {
		return nil, fmt.Errorf("%s: %w", op, notFound(contentID))
	}

	pi := pg.Items[0].toModel()
	return &pi, nil
}

// get собирает URL с общими параметрами и выполняет запрос.
// Ключ читается на каждый вызов; его отсутствие валит запрос до I/O.
func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	key, err := c.creds.ServiceKey()
	if err != nil {
		return nil, err
	}

	q.Set("serviceKey", key)
	q.Set("MobileOS", "ETC")
	q.Set("MobileApp", c.appName)
	q.Set("_type", "json")

	body, err := c.transport.Get(ctx, c.baseURL+"/"+path+"?"+q.Encode())
	if err != nil {
		return nil, upgradeAuthStatus(err)
	}

	return body, nil
}

// listResult — общий разбор списковых ответов.
func (c *Client) listResult(op string, body []byte, p ListParams) (*models.TourListResult, error) {
	pg, err := parsePage[listItem](body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := &models.TourListResult{
		Items:      make([]models.TourListItem, 0, len(pg.Items)),
		TotalCount: pg.TotalCount,
		PageSize:   p.PageSize,
		PageNo:     p.PageNo,
	}
	for _, it := range pg.Items {
		out.Items = append(out.Items, it.toModel())
	}

	return out, nil
}

// upgradeAuthStatus переводит финальные 401/403 транспорта
// в KindAPIKeyInvalid: это отказ ключа, а не транзиентный сбой.
func upgradeAuthStatus(err error) error {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindHTTP &&
		(e.HTTPStatus == 401 || e.HTTPStatus == 403) {
		return &Error{
			Kind:       KindAPIKeyInvalid,
			Message:    "service key rejected by upstream",
			HTTPStatus: e.HTTPStatus,
			Err:        e,
		}
	}
	return err
}

func notFound(contentID string) *Error {
	return &Error{
		Kind:    KindAPI,
		Message: fmt.Sprintf("content %s not found", contentID),
		Err:     ErrNoResults,
	}
}

func setIfNotEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
