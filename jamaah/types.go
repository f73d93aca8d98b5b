package jamaah

// Submission is one applicant's pilgrimage-package registration record.
// Attribute names follow the intake form, so they stay Indonesian on the
// wire. The seven document fields hold storage paths, not URLs; paths are
// exchanged for download URLs when a detail view asks for them.
type Submission struct {
	ID           string `dynamo:"id,hash" dynamodbav:"id" json:"id"`
	Nama         string `dynamo:"nama" dynamodbav:"nama" json:"nama"`
	Email        string `dynamo:"email" dynamodbav:"email" json:"email"`
	NoHp         string `dynamo:"noHp" dynamodbav:"noHp" json:"noHp"`
	JenisKelamin string `dynamo:"jenisKelamin" dynamodbav:"jenisKelamin" json:"jenisKelamin"`
	Kota         string `dynamo:"kota" dynamodbav:"kota" json:"kota"`
	Alamat       string `dynamo:"alamat" dynamodbav:"alamat" json:"alamat"`
	Pekerjaan    string `dynamo:"pekerjaan" dynamodbav:"pekerjaan" json:"pekerjaan"`
	Ttl          string `dynamo:"ttl" dynamodbav:"ttl" json:"ttl"` // date of birth
	NoKtpSim     string `dynamo:"noKtpSim" dynamodbav:"noKtpSim" json:"noKtpSim"`
	PaketUmroh   string `dynamo:"paketUmroh" dynamodbav:"paketUmroh" json:"paketUmroh"`

	Ktp          string `dynamo:"ktp" dynamodbav:"ktp" json:"ktp"`
	Foto         string `dynamo:"foto" dynamodbav:"foto" json:"foto"`
	FotoPassport string `dynamo:"fotoPassport" dynamodbav:"fotoPassport" json:"fotoPassport"`
	BukuNikah    string `dynamo:"bukuNikah" dynamodbav:"bukuNikah" json:"bukuNikah"`
	Kk           string `dynamo:"kk" dynamodbav:"kk" json:"kk"`
	KartuBpjs    string `dynamo:"kartuBpjs" dynamodbav:"kartuBpjs" json:"kartuBpjs"`
	SuratVaksin  string `dynamo:"suratVaksin" dynamodbav:"suratVaksin" json:"suratVaksin"`
}

// DocumentFields lists the seven document path fields in display order.
var DocumentFields = []string{
	"ktp",
	"foto",
	"fotoPassport",
	"bukuNikah",
	"kk",
	"kartuBpjs",
	"suratVaksin",
}

// DocumentPath returns the storage path held in the named document field,
// or empty if the field is unknown or unset.
func (s Submission) DocumentPath(field string) string {
	switch field {
	case "ktp":
		return s.Ktp
	case "foto":
		return s.Foto
	case "fotoPassport":
		return s.FotoPassport
	case "bukuNikah":
		return s.BukuNikah
	case "kk":
		return s.Kk
	case "kartuBpjs":
		return s.KartuBpjs
	case "suratVaksin":
		return s.SuratVaksin
	}
	return ""
}

// SubmissionDetail is a submission plus its per-view resolved document
// URLs, keyed by document field. Fields whose resolution failed are
// absent from the map. Never persisted; rebuilt on every detail fetch.
type SubmissionDetail struct {
	Submission
	Documents map[string]string `json:"documents"`
}
