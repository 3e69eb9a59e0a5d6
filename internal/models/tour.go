// models содержит доменные сущности tour-сервиса.
// Эти типы используются слоями бизнес-логики, клиента TourAPI и транспорта.
package models

import "time"

// Идентификаторы типов контента TourAPI (contentTypeId).
// Значения фиксированы апстримом и трактуются как непрозрачные строки.
const (
	ContentTypeAttraction    = "12" // 관광지
	ContentTypeCulture       = "14" // 문화시설
	ContentTypeFestival      = "15" // 축제공연행사
	ContentTypeCourse        = "25" // 여행코스
	ContentTypeLeisure       = "28" // 레포츠
	ContentTypeAccommodation = "32" // 숙박
	ContentTypeShopping      = "38" // 쇼핑
	ContentTypeRestaurant    = "39" // 음식점
)

// ContentTypes — фиксированный перечень из 8 типов контента в порядке,
// в котором их отдаёт апстрим. Используется агрегатором статистики
// как домен итерации.
var ContentTypes = []struct {
	ID   string
	Name string
}{
	{ContentTypeAttraction, "관광지"},
	{ContentTypeCulture, "문화시설"},
	{ContentTypeFestival, "축제공연행사"},
	{ContentTypeCourse, "여행코스"},
	{ContentTypeLeisure, "레포츠"},
	{ContentTypeAccommodation, "숙박"},
	{ContentTypeShopping, "쇼핑"},
	{ContentTypeRestaurant, "음식점"},
}

// AreaCode — регион первого уровня: код и отображаемое имя.
type AreaCode struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TourListItem — одна строка пагинированной выборки или поиска.
//
// Особенности:
//   - MapX/MapY — координаты в виде строк, как их отдаёт апстрим;
//   - FirstImage/FirstImage2 могут быть пустыми;
//   - Cat1..Cat3 — иерархия категорий, любой уровень может отсутствовать.
type TourListItem struct {
	ContentID     string `json:"content_id"`
	ContentTypeID string `json:"content_type_id"`
	Title         string `json:"title"`
	Addr1         string `json:"addr1"`
	Addr2         string `json:"addr2,omitempty"`
	AreaCode      string `json:"area_code"`
	MapX          string `json:"map_x"`
	MapY          string `json:"map_y"`
	FirstImage    string `json:"first_image,omitempty"`
	FirstImage2   string `json:"first_image2,omitempty"`
	Tel           string `json:"tel,omitempty"`
	Cat1          string `json:"cat1,omitempty"`
	Cat2          string `json:"cat2,omitempty"`
	Cat3          string `json:"cat3,omitempty"`
	ModifiedTime  string `json:"modified_time"`
}

// TourListResult — страница результатов.
// TotalCount — авторитетное значение апстрима для пагинации;
// len(Items) может быть меньше (например, при запросе одной строки
// ради счётчика).
type TourListResult struct {
	Items      []TourListItem `json:"items"`
	TotalCount int            `json:"total_count"`
	PageSize   int            `json:"page_size"`
	PageNo     int            `json:"page_no"`
}

// TourDetail — общая карточка записи (detailCommon).
// Поля — pass-through апстрима; сервис их не интерпретирует.
type TourDetail struct {
	ContentID     string `json:"content_id"`
	ContentTypeID string `json:"content_type_id"`
	Title         string `json:"title"`
	Overview      string `json:"overview,omitempty"`
	Addr1         string `json:"addr1,omitempty"`
	Addr2         string `json:"addr2,omitempty"`
	AreaCode      string `json:"area_code,omitempty"`
	MapX          string `json:"map_x,omitempty"`
	MapY          string `json:"map_y,omitempty"`
	FirstImage    string `json:"first_image,omitempty"`
	FirstImage2   string `json:"first_image2,omitempty"`
	Tel           string `json:"tel,omitempty"`
	Homepage      string `json:"homepage,omitempty"`
	Zipcode       string `json:"zipcode,omitempty"`
	ModifiedTime  string `json:"modified_time,omitempty"`
}

// TourIntro — интро-блок записи (detailIntro).
// Набор заполненных полей зависит от contentTypeId: у жилья —
// чекин/чекаут, у ресторанов — меню и т.д. Сервис отдаёт их как есть.
type TourIntro struct {
	ContentID     string `json:"content_id"`
	ContentTypeID string `json:"content_type_id"`

	// Общие поля.
	Infocenter string `json:"infocenter,omitempty"`
	RestDate   string `json:"rest_date,omitempty"`
	UseTime    string `json:"use_time,omitempty"`
	Parking    string `json:"parking,omitempty"`

	// Жильё (contentTypeId == 32).
	CheckInTime  string `json:"check_in_time,omitempty"`
	CheckOutTime string `json:"check_out_time,omitempty"`
	RoomCount    string `json:"room_count,omitempty"`

	// Ресторан (contentTypeId == 39).
	FirstMenu string `json:"first_menu,omitempty"`
	TreatMenu string `json:"treat_menu,omitempty"`
	OpenTime  string `json:"open_time,omitempty"`

	// Фестиваль (contentTypeId == 15).
	EventStartDate string `json:"event_start_date,omitempty"`
	EventEndDate   string `json:"event_end_date,omitempty"`
	EventPlace     string `json:"event_place,omitempty"`
}

// TourImage — одно изображение записи (detailImage).
type TourImage struct {
	ContentID   string `json:"content_id"`
	OriginURL   string `json:"origin_url"`
	SmallURL    string `json:"small_url,omitempty"`
	ImageName   string `json:"image_name,omitempty"`
	SerialNum   string `json:"serial_num,omitempty"`
	CopyrightID string `json:"copyright_id,omitempty"`
}

// TourImageResult — страница изображений с общим счётчиком.
type TourImageResult struct {
	Items      []TourImage `json:"items"`
	TotalCount int         `json:"total_count"`
}

// PetTourInfo — информация о посещении с питомцами (detailPetTour).
type PetTourInfo struct {
	ContentID      string `json:"content_id"`
	AcmpyTypeCd    string `json:"acmpy_type_cd,omitempty"`
	AcmpyPsblCpam  string `json:"acmpy_psbl_cpam,omitempty"`
	AcmpyNeedMtr   string `json:"acmpy_need_mtr,omitempty"`
	EtcAcmpyInfo   string `json:"etc_acmpy_info,omitempty"`
	RelaRntlPrdlst string `json:"rela_rntl_prdlst,omitempty"`
	RelaPosesFclty string `json:"rela_poses_fclty,omitempty"`
}

// RegionStat — количество записей в одном регионе.
type RegionStat struct {
	AreaCode string `json:"area_code"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
}

// TypeStat — количество записей одного типа контента и его доля.
// Percentage округляется до 2 знаков независимо по каждому типу,
// поэтому сумма долей не обязана давать ровно 100.00.
type TypeStat struct {
	ContentTypeID string  `json:"content_type_id"`
	Name          string  `json:"name"`
	Count         int     `json:"count"`
	Percentage    float64 `json:"percentage"`
}

// StatsSummary — сводка по базе апстрима.
//
// Особенности:
//   - TotalCount — сумма счётчиков по типам (не по регионам: выборки
//     независимы и могут расходиться, расхождение принимается как есть);
//   - TopRegions/TopTypes — до 3 элементов, по убыванию Count;
//   - LastUpdated — момент агрегации (UTC), не гарантия свежести данных.
type StatsSummary struct {
	TotalCount  int          `json:"total_count"`
	TopRegions  []RegionStat `json:"top_regions"`
	TopTypes    []TypeStat   `json:"top_types"`
	LastUpdated time.Time    `json:"last_updated"`
}
