package models

type StorageMediaID string

const (
	StorageMediaBluRay     StorageMediaID = "BLURAY"
	StorageMediaDVD        StorageMediaID = "DVD"
	StorageMediaCD         StorageMediaID = "CD"
	StorageMediaFloppyDisk StorageMediaID = "FLOPPY_DISK"
	StorageMediaCartridge  StorageMediaID = "CARTRIDGE"
	StorageMediaDigital    StorageMediaID = "DIGITAL"
)

type StorageMedia struct {
	ID   StorageMediaID
	Name string
}

var StorageMedias = []StorageMedia{
	{ID: StorageMediaBluRay, Name: "Blu-ray"},
	{ID: StorageMediaDVD, Name: "DVD"},
	{ID: StorageMediaCD, Name: "CD"},
	{ID: StorageMediaFloppyDisk, Name: "Floppy disk"},
	{ID: StorageMediaCartridge, Name: "Cartridge"},
	{ID: StorageMediaDigital, Name: "Digital"},
}

type ConditionID string

const (
	ConditionCIB    ConditionID = "CIB"
	ConditionLoose  ConditionID = "LOOSE"
	ConditionSealed ConditionID = "SEALED"
)

type Condition struct {
	ID   ConditionID
	Name string
}

var Conditions = []Condition{
	{ID: ConditionCIB, Name: "CIB"},
	{ID: ConditionLoose, Name: "Loose"},
	{ID: ConditionSealed, Name: "Sealed"},
}

type Currency struct {
	ISO    string
	Name   string
	Symbol string
}

const DefaultCurrency = "USD"

var Currencies = []Currency{
	{ISO: "BRL", Name: "Brazilian real", Symbol: "R$"},
	{ISO: "EUR", Name: "Euro", Symbol: "€"},
	{ISO: "GBP", Name: "Pound sterling", Symbol: "£"},
	{ISO: "JPY", Name: "Japanese yen", Symbol: "¥"},
	{ISO: "USD", Name: "United States dollar", Symbol: "$"},
}

func IsValidStorageMedia(id StorageMediaID) bool {
	for _, m := range StorageMedias {
		if m.ID == id {
			return true
		}
	}
	return false
}

func StorageMediaName(id StorageMediaID) string {
	for _, m := range StorageMedias {
		if m.ID == id {
			return m.Name
		}
	}
	return "Unknown"
}

func IsValidCondition(id ConditionID) bool {
	for _, c := range Conditions {
		if c.ID == id {
			return true
		}
	}
	return false
}

func ConditionName(id ConditionID) string {
	for _, c := range Conditions {
		if c.ID == id {
			return c.Name
		}
	}
	return "Unknown"
}

func GetCurrency(iso string) (Currency, bool) {
	for _, c := range Currencies {
		if c.ISO == iso {
			return c, true
		}
	}
	return Currency{}, false
}
