package service

import (
	"reflect"
	"strconv"
	"time"

	"art-collector/internal/domain/works"
)

const dateLayout = "2006-01-02"

// PieceForm is the submitted shape of a piece. Every value arrives as text;
// conversion happens after validation.
type PieceForm struct {
	Title  string `form:"title" validate:"required"`
	Artist string `form:"artist" validate:"required"`
	Medium string `form:"medium" validate:"required"`

	YearStarted  string `form:"year_started" validate:"omitempty,number"`
	YearFinished string `form:"year_finished" validate:"omitempty,number"`

	SizeX    string `form:"size_x" validate:"omitempty,nonneg"`
	SizeY    string `form:"size_y" validate:"omitempty,nonneg"`
	SizeZ    string `form:"size_z" validate:"omitempty,nonneg"`
	SizeUnit string `form:"size_unit" validate:"required"`

	OwnerName        string `form:"owner_name"`
	OwnerContactInfo string `form:"owner_contact_info"`
	OwnerStatus      string `form:"owner_status"`

	HolderName        string `form:"holder_name"`
	HolderContactInfo string `form:"holder_contact_info"`
	HolderStatus      string `form:"holder_status"`

	AcquisitionDate string `form:"acquisition_date" validate:"omitempty,datetime=2006-01-02"`

	Archival string `form:"archival" validate:"required,flag"`
	ForSale  string `form:"for_sale" validate:"required,flag"`

	Price    string `form:"price" validate:"omitempty,nonneg"`
	Currency string `form:"currency"`

	Description string `form:"description"`
	Catalogue   string `form:"catalogue"`
}

var pieceFormFields = func() map[string]int {
	t := reflect.TypeOf(PieceForm{})
	m := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		m[t.Field(i).Tag.Get("form")] = i
	}
	return m
}()

// PieceFormKeys filters keys down to the ones PieceForm knows.
func PieceFormKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := pieceFormFields[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

func (f PieceForm) get(key string) string {
	i, ok := pieceFormFields[key]
	if !ok {
		return ""
	}
	return reflect.ValueOf(f).Field(i).String()
}

func (f *PieceForm) set(key, value string) {
	if i, ok := pieceFormFields[key]; ok {
		reflect.ValueOf(f).Elem().Field(i).SetString(value)
	}
}

// overlay copies the named keys of other onto a copy of f.
func (f PieceForm) overlay(other PieceForm, keys []string) PieceForm {
	for _, k := range keys {
		f.set(k, other.get(k))
	}
	return f
}

func formFromPiece(p works.ArtPiece) PieceForm {
	f := PieceForm{
		Title:       p.Title,
		Artist:      p.Artist,
		Medium:      p.Medium,
		SizeUnit:    p.Size.Unit,
		Archival:    strconv.FormatBool(p.Archival),
		ForSale:     strconv.FormatBool(p.ForSale),
		Currency:    p.Price.Currency,
		Description: p.Description,
		Catalogue:   p.Catalogue,

		YearStarted:  formatInt(p.Year.Started),
		YearFinished: formatInt(p.Year.Finished),
		SizeX:        formatFloat(p.Size.X),
		SizeY:        formatFloat(p.Size.Y),
		SizeZ:        formatFloat(p.Size.Z),
		Price:        formatFloat(p.Price.Amount),
	}
	if p.AcquisitionDate != nil {
		f.AcquisitionDate = p.AcquisitionDate.Format(dateLayout)
	}
	if len(p.Owners) > 0 {
		f.OwnerName, f.OwnerContactInfo, f.OwnerStatus = p.Owners[0].Name, p.Owners[0].ContactInfo, p.Owners[0].Status
	}
	if len(p.Holders) > 0 {
		f.HolderName, f.HolderContactInfo, f.HolderStatus = p.Holders[0].Name, p.Holders[0].ContactInfo, p.Holders[0].Status
	}
	return f
}

// applyTo writes a validated form onto p. With a nil only set every field is
// written, otherwise just the groups touched by the listed keys.
func (f PieceForm) applyTo(p *works.ArtPiece, only map[string]bool) {
	has := func(keys ...string) bool {
		if only == nil {
			return true
		}
		for _, k := range keys {
			if only[k] {
				return true
			}
		}
		return false
	}

	if has("title") {
		p.Title = f.Title
	}
	if has("artist") {
		p.Artist = f.Artist
	}
	if has("medium") {
		p.Medium = f.Medium
	}
	if has("year_started") {
		p.Year.Started = parseInt(f.YearStarted)
	}
	if has("year_finished") {
		p.Year.Finished = parseInt(f.YearFinished)
	}
	if has("size_x") {
		p.Size.X = parseFloat(f.SizeX)
	}
	if has("size_y") {
		p.Size.Y = parseFloat(f.SizeY)
	}
	if has("size_z") {
		p.Size.Z = parseFloat(f.SizeZ)
	}
	if has("size_unit") {
		p.Size.Unit = f.SizeUnit
	}
	if has("owner_name", "owner_contact_info", "owner_status") {
		p.Owners = partyList(works.Party{Name: f.OwnerName, ContactInfo: f.OwnerContactInfo, Status: f.OwnerStatus})
	}
	if has("holder_name", "holder_contact_info", "holder_status") {
		p.Holders = partyList(works.Party{Name: f.HolderName, ContactInfo: f.HolderContactInfo, Status: f.HolderStatus})
	}
	if has("acquisition_date") {
		p.AcquisitionDate = parseDate(f.AcquisitionDate)
	}
	if has("archival") {
		p.Archival, _ = parseFlag(f.Archival)
	}
	if has("for_sale") {
		p.ForSale, _ = parseFlag(f.ForSale)
	}
	if has("price") {
		p.Price.Amount = parseFloat(f.Price)
	}
	if has("currency") {
		p.Price.Currency = f.Currency
	}
	if has("description") {
		p.Description = f.Description
	}
	if has("catalogue") {
		p.Catalogue = f.Catalogue
	}
}

func partyList(p works.Party) []works.Party {
	if p.IsZero() {
		return nil
	}
	return []works.Party{p}
}

func parseInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &n
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
