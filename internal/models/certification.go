package models

type CertificationSystem string

const (
	CertificationSystemESRB     CertificationSystem = "ESRB"
	CertificationSystemPEGI     CertificationSystem = "PEGI"
	CertificationSystemCERO     CertificationSystem = "CERO"
	CertificationSystemClassInd CertificationSystem = "CLASSIND"
)

type CertificationID string

type Certification struct {
	ID       CertificationID
	System   CertificationSystem
	Name     string
	IconName string
}

var Certifications = []Certification{
	{ID: "ESRB_E", System: CertificationSystemESRB, Name: "Everyone", IconName: "esrb-everyone"},
	{ID: "ESRB_E10", System: CertificationSystemESRB, Name: "Everyone 10+", IconName: "esrb-everyone-10-plus"},
	{ID: "ESRB_T", System: CertificationSystemESRB, Name: "Teen", IconName: "esrb-teen"},
	{ID: "ESRB_M17", System: CertificationSystemESRB, Name: "Mature", IconName: "esrb-mature"},
	{ID: "ESRB_AO", System: CertificationSystemESRB, Name: "Adults Only", IconName: "esrb-adults-only"},

	{ID: "PEGI_3", System: CertificationSystemPEGI, Name: "PEGI 3", IconName: "pegi-3-years"},
	{ID: "PEGI_7", System: CertificationSystemPEGI, Name: "PEGI 7", IconName: "pegi-7-years"},
	{ID: "PEGI_12", System: CertificationSystemPEGI, Name: "PEGI 12", IconName: "pegi-12-years"},
	{ID: "PEGI_16", System: CertificationSystemPEGI, Name: "PEGI 16", IconName: "pegi-16-years"},
	{ID: "PEGI_18", System: CertificationSystemPEGI, Name: "PEGI 18", IconName: "pegi-18-years"},

	{ID: "CERO_A", System: CertificationSystemCERO, Name: "CERO A", IconName: "cero-a"},
	{ID: "CERO_B", System: CertificationSystemCERO, Name: "CERO B", IconName: "cero-b"},
	{ID: "CERO_C", System: CertificationSystemCERO, Name: "CERO C", IconName: "cero-c"},
	{ID: "CERO_D", System: CertificationSystemCERO, Name: "CERO D", IconName: "cero-d"},
	{ID: "CERO_Z", System: CertificationSystemCERO, Name: "CERO Z", IconName: "cero-z"},

	{ID: "CLASSIND_L", System: CertificationSystemClassInd, Name: "Livre", IconName: "classind-livre"},
	{ID: "CLASSIND_10", System: CertificationSystemClassInd, Name: "10 anos", IconName: "classind-10-anos"},
	{ID: "CLASSIND_12", System: CertificationSystemClassInd, Name: "12 anos", IconName: "classind-12-anos"},
	{ID: "CLASSIND_14", System: CertificationSystemClassInd, Name: "14 anos", IconName: "classind-14-anos"},
	{ID: "CLASSIND_16", System: CertificationSystemClassInd, Name: "16 anos", IconName: "classind-16-anos"},
	{ID: "CLASSIND_18", System: CertificationSystemClassInd, Name: "18 anos", IconName: "classind-18-anos"},
}

var certificationByID = make(map[CertificationID]Certification, len(Certifications))

func init() {
	for _, c := range Certifications {
		certificationByID[c.ID] = c
	}
}

func GetCertification(id CertificationID) (Certification, bool) {
	c, ok := certificationByID[id]
	return c, ok
}

func IsValidCertification(id CertificationID) bool {
	_, ok := certificationByID[id]
	return ok
}

func CertificationName(id CertificationID) string {
	if c, ok := certificationByID[id]; ok {
		return c.Name
	}
	return "Unknown"
}

func (s CertificationSystem) DisplayName() string {
	if s == CertificationSystemClassInd {
		return "ClassInd"
	}
	return string(s)
}
