package tourapi

import "github.com/pribylovaa/go-tour-aggregator/internal/models"

// Сырые формы item из конверта TourAPI.
// Имена json-полей — как у апстрима (нижний регистр без разделителей);
// маппинг в доменные типы — рядом, в toModel.

type areaCodeItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
	RNum int    `json:"rnum"`
}

type listItem struct {
	ContentID     string `json:"contentid"`
	ContentTypeID string `json:"contenttypeid"`
	Title         string `json:"title"`
	Addr1         string `json:"addr1"`
	Addr2         string `json:"addr2"`
	AreaCode      string `json:"areacode"`
	MapX          string `json:"mapx"`
	MapY          string `json:"mapy"`
	FirstImage    string `json:"firstimage"`
	FirstImage2   string `json:"firstimage2"`
	Tel           string `json:"tel"`
	Cat1          string `json:"cat1"`
	Cat2          string `json:"cat2"`
	Cat3          string `json:"cat3"`
	ModifiedTime  string `json:"modifiedtime"`
}

func (it listItem) toModel() models.TourListItem {
	return models.TourListItem{
		ContentID:     it.ContentID,
		ContentTypeID: it.ContentTypeID,
		Title:         it.Title,
		Addr1:         it.Addr1,
		Addr2:         it.Addr2,
		AreaCode:      it.AreaCode,
		MapX:          it.MapX,
		MapY:          it.MapY,
		FirstImage:    it.FirstImage,
		FirstImage2:   it.FirstImage2,
		Tel:           it.Tel,
		Cat1:          it.Cat1,
		Cat2:          it.Cat2,
		Cat3:          it.Cat3,
		ModifiedTime:  it.ModifiedTime,
	}
}

type detailItem struct {
	ContentID     string `json:"contentid"`
	ContentTypeID string `json:"contenttypeid"`
	Title         string `json:"title"`
	Overview      string `json:"overview"`
	Addr1         string `json:"addr1"`
	Addr2         string `json:"addr2"`
	AreaCode      string `json:"areacode"`
	MapX          string `json:"mapx"`
	MapY          string `json:"mapy"`
	FirstImage    string `json:"firstimage"`
	FirstImage2   string `json:"firstimage2"`
	Tel           string `json:"tel"`
	Homepage      string `json:"homepage"`
	Zipcode       string `json:"zipcode"`
	ModifiedTime  string `json:"modifiedtime"`
}

func (it detailItem) toModel() models.TourDetail {
	return models.TourDetail{
		ContentID:     it.ContentID,
		ContentTypeID: it.ContentTypeID,
		Title:         it.Title,
		Overview:      it.Overview,
		Addr1:         it.Addr1,
		Addr2:         it.Addr2,
		AreaCode:      it.AreaCode,
		MapX:          it.MapX,
		MapY:          it.MapY,
		FirstImage:    it.FirstImage,
		FirstImage2:   it.FirstImage2,
		Tel:           it.Tel,
		Homepage:      it.Homepage,
		Zipcode:       it.Zipcode,
		ModifiedTime:  it.ModifiedTime,
	}
}

// introItem — объединение полей detailIntro по типам контента:
// часть имён у апстрима различается суффиксом типа
// (parkingfood, restdatefood и т.д.), поэтому поля дублируются
// и сводятся в toModel через firstNonEmpty.
type introItem struct {
	ContentID     string `json:"contentid"`
	ContentTypeID string `json:"contenttypeid"`

	Infocenter     string `json:"infocenter"`
	InfocenterFood string `json:"infocenterfood"`
	RestDate       string `json:"restdate"`
	RestDateFood   string `json:"restdatefood"`
	UseTime        string `json:"usetime"`
	Parking        string `json:"parking"`
	ParkingFood    string `json:"parkingfood"`
	ParkingLodging string `json:"parkinglodging"`

	CheckInTime  string `json:"checkintime"`
	CheckOutTime string `json:"checkouttime"`
	RoomCount    string `json:"roomcount"`

	FirstMenu string `json:"firstmenu"`
	TreatMenu string `json:"treatmenu"`
	OpenTime  string `json:"opentimefood"`

	EventStartDate string `json:"eventstartdate"`
	EventEndDate   string `json:"eventenddate"`
	EventPlace     string `json:"eventplace"`
}

func (it introItem) toModel() models.TourIntro {
	return models.TourIntro{
		ContentID:     it.ContentID,
		ContentTypeID: it.ContentTypeID,

		Infocenter: firstNonEmpty(it.Infocenter, it.InfocenterFood),
		RestDate:   firstNonEmpty(it.RestDate, it.RestDateFood),
		UseTime:    it.UseTime,
		Parking:    firstNonEmpty(it.Parking, it.ParkingFood, it.ParkingLodging),

		CheckInTime:  it.CheckInTime,
		CheckOutTime: it.CheckOutTime,
		RoomCount:    it.RoomCount,

		FirstMenu: it.FirstMenu,
		TreatMenu: it.TreatMenu,
		OpenTime:  it.OpenTime,

		EventStartDate: it.EventStartDate,
		EventEndDate:   it.EventEndDate,
		EventPlace:     it.EventPlace,
	}
}

type imageItem struct {
	ContentID   string `json:"contentid"`
	OriginURL   string `json:"originimgurl"`
	SmallURL    string `json:"smallimageurl"`
	ImageName   string `json:"imgname"`
	SerialNum   string `json:"serialnum"`
	CopyrightID string `json:"cpyrhtDivCd"`
}

func (it imageItem) toModel() models.TourImage {
	return models.TourImage{
		ContentID:   it.ContentID,
		OriginURL:   it.OriginURL,
		SmallURL:    it.SmallURL,
		ImageName:   it.ImageName,
		SerialNum:   it.SerialNum,
		CopyrightID: it.CopyrightID,
	}
}

type petItem struct {
	ContentID      string `json:"contentid"`
	AcmpyTypeCd    string `json:"acmpyTypeCd"`
	AcmpyPsblCpam  string `json:"acmpyPsblCpam"`
	AcmpyNeedMtr   string `json:"acmpyNeedMtr"`
	EtcAcmpyInfo   string `json:"etcAcmpyInfo"`
	RelaRntlPrdlst string `json:"relaRntlPrdlst"`
	RelaPosesFclty string `json:"relaPosesFclty"`
}

func (it petItem) toModel() models.PetTourInfo {
	return models.PetTourInfo{
		ContentID:      it.ContentID,
		AcmpyTypeCd:    it.AcmpyTypeCd,
		AcmpyPsblCpam:  it.AcmpyPsblCpam,
		AcmpyNeedMtr:   it.AcmpyNeedMtr,
		EtcAcmpyInfo:   it.EtcAcmpyInfo,
		RelaRntlPrdlst: it.RelaRntlPrdlst,
		RelaPosesFclty: it.RelaPosesFclty,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
