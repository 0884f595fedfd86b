package domain

// Province is one of the fixed Iraqi delivery provinces.
type Province string

const (
	ProvinceBaghdad      Province = "Baghdad"
	ProvinceBasra        Province = "Basra"
	ProvinceNineveh      Province = "Nineveh"
	ProvinceErbil        Province = "Erbil"
	ProvinceNajaf        Province = "Najaf"
	ProvinceKarbala      Province = "Karbala"
	ProvinceDhiQar       Province = "Dhi Qar"
	ProvinceBabylon      Province = "Babylon"
	ProvinceAnbar        Province = "Anbar"
	ProvinceDiyala       Province = "Diyala"
	ProvinceKirkuk       Province = "Kirkuk"
	ProvinceMuthanna     Province = "Muthanna"
	ProvinceQadisiyah    Province = "Qadisiyah"
	ProvinceMaysan       Province = "Maysan"
	ProvinceWasit        Province = "Wasit"
	ProvinceSulaymaniyah Province = "Sulaymaniyah"
	ProvinceDuhok        Province = "Duhok"
	ProvinceSalahAlDin   Province = "Salah al-Din"
)

// Provinces lists every deliverable province.
var Provinces = []Province{
	ProvinceBaghdad, ProvinceBasra, ProvinceNineveh, ProvinceErbil,
	ProvinceNajaf, ProvinceKarbala, ProvinceDhiQar, ProvinceBabylon,
	ProvinceAnbar, ProvinceDiyala, ProvinceKirkuk, ProvinceMuthanna,
	ProvinceQadisiyah, ProvinceMaysan, ProvinceWasit, ProvinceSulaymaniyah,
	ProvinceDuhok, ProvinceSalahAlDin,
}

// Valid reports whether p is a known province.
func (p Province) Valid() bool {
	for _, known := range Provinces {
		if p == known {
			return true
		}
	}
	return false
}
