package gmaps

import (
	"github.com/ambiyansyah-risyal/gmaps/internal/enum"
)

// Language is a result language supported by the web services.
type Language uint8

const (
	LanguageUnknown Language = iota
	LanguageAfrikaans
	LanguageAlbanian
	LanguageAmharic
	LanguageArabic
	LanguageArmenian
	LanguageAzerbaijani
	LanguageBasque
	LanguageBelarusian
	LanguageBengali
	LanguageBosnian
	LanguageBulgarian
	LanguageBurmese
	LanguageCatalan
	LanguageChinese
	LanguageChineseSimplified
	LanguageChineseHongKong
	LanguageChineseTraditional
	LanguageCroatian
	LanguageCzech
	LanguageDanish
	LanguageDutch
	LanguageEnglish
	LanguageEnglishAustralian
	LanguageEnglishGreatBritain
	LanguageEstonian
	LanguageFarsi
	LanguageFinnish
	LanguageFilipino
	LanguageFrench
	LanguageFrenchCanada
	LanguageGalician
	LanguageGeorgian
	LanguageGerman
	LanguageGreek
	LanguageGujarati
	LanguageHebrew
	LanguageHindi
	LanguageHungarian
	LanguageIcelandic
	LanguageIndonesian
	LanguageItalian
	LanguageJapanese
	LanguageKannada
	LanguageKazakh
	LanguageKhmer
	LanguageKorean
	LanguageKyrgyz
	LanguageLao
	LanguageLatvian
	LanguageLithuanian
	LanguageMacedonian
	LanguageMalay
	LanguageMalayalam
	LanguageMarathi
	LanguageMongolian
	LanguageNepali
	LanguageNorwegian
	LanguagePolish
	LanguagePortuguese
	LanguagePortugueseBrazil
	LanguagePortuguesePortugal
	LanguagePunjabi
	LanguageRomanian
	LanguageRussian
	LanguageSerbian
	LanguageSinhalese
	LanguageSlovak
	LanguageSlovenian
	LanguageSpanish
	LanguageSpanishLatinAmerica
	LanguageSwahili
	LanguageSwedish
	LanguageTamil
	LanguageTelugu
	LanguageThai
	LanguageTurkish
	LanguageUkrainian
	LanguageUrdu
	LanguageUzbek
	LanguageVietnamese
	LanguageZulu
)

var languageTable = enum.New("language", LanguageUnknown,
	enum.P("af", LanguageAfrikaans),
	enum.P("sq", LanguageAlbanian),
	enum.P("am", LanguageAmharic),
	enum.P("ar", LanguageArabic),
	enum.P("hy", LanguageArmenian),
	enum.P("az", LanguageAzerbaijani),
	enum.P("eu", LanguageBasque),
	enum.P("be", LanguageBelarusian),
	enum.P("bn", LanguageBengali),
	enum.P("bs", LanguageBosnian),
	enum.P("bg", LanguageBulgarian),
	enum.P("my", LanguageBurmese),
	enum.P("ca", LanguageCatalan),
	enum.P("zh", LanguageChinese),
	enum.P("zh-CN", LanguageChineseSimplified),
	enum.P("zh-HK", LanguageChineseHongKong),
	enum.P("zh-TW", LanguageChineseTraditional),
	enum.P("hr", LanguageCroatian),
	enum.P("cs", LanguageCzech),
	enum.P("da", LanguageDanish),
	enum.P("nl", LanguageDutch),
	enum.P("en", LanguageEnglish),
	enum.P("en-AU", LanguageEnglishAustralian),
	enum.P("en-GB", LanguageEnglishGreatBritain),
	enum.P("et", LanguageEstonian),
	enum.P("fa", LanguageFarsi),
	enum.P("fi", LanguageFinnish),
	enum.P("fil", LanguageFilipino),
	enum.P("fr", LanguageFrench),
	enum.P("fr-CA", LanguageFrenchCanada),
	enum.P("gl", LanguageGalician),
	enum.P("ka", LanguageGeorgian),
	enum.P("de", LanguageGerman),
	enum.P("el", LanguageGreek),
	enum.P("gu", LanguageGujarati),
	enum.P("iw", LanguageHebrew),
	enum.P("hi", LanguageHindi),
	enum.P("hu", LanguageHungarian),
	enum.P("is", LanguageIcelandic),
	enum.P("id", LanguageIndonesian),
	enum.P("it", LanguageItalian),
	enum.P("ja", LanguageJapanese),
	enum.P("kn", LanguageKannada),
	enum.P("kk", LanguageKazakh),
	enum.P("km", LanguageKhmer),
	enum.P("ko", LanguageKorean),
	enum.P("ky", LanguageKyrgyz),
	enum.P("lo", LanguageLao),
	enum.P("lv", LanguageLatvian),
	enum.P("lt", LanguageLithuanian),
	enum.P("mk", LanguageMacedonian),
	enum.P("ms", LanguageMalay),
	enum.P("ml", LanguageMalayalam),
	enum.P("mr", LanguageMarathi),
	enum.P("mn", LanguageMongolian),
	enum.P("ne", LanguageNepali),
	enum.P("no", LanguageNorwegian),
	enum.P("pl", LanguagePolish),
	enum.P("pt", LanguagePortuguese),
	enum.P("pt-BR", LanguagePortugueseBrazil),
	enum.P("pt-PT", LanguagePortuguesePortugal),
	enum.P("pa", LanguagePunjabi),
	enum.P("ro", LanguageRomanian),
	enum.P("ru", LanguageRussian),
	enum.P("sr", LanguageSerbian),
	enum.P("si", LanguageSinhalese),
	enum.P("sk", LanguageSlovak),
	enum.P("sl", LanguageSlovenian),
	enum.P("es", LanguageSpanish),
	enum.P("es-419", LanguageSpanishLatinAmerica),
	enum.P("sw", LanguageSwahili),
	enum.P("sv", LanguageSwedish),
	enum.P("ta", LanguageTamil),
	enum.P("te", LanguageTelugu),
	enum.P("th", LanguageThai),
	enum.P("tr", LanguageTurkish),
	enum.P("uk", LanguageUkrainian),
	enum.P("ur", LanguageUrdu),
	enum.P("uz", LanguageUzbek),
	enum.P("vi", LanguageVietnamese),
	enum.P("zu", LanguageZulu),
)

func (l Language) String() string {
	return languageTable.Text(l)
}

// MarshalText implements encoding.TextMarshaler.
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Language) UnmarshalText(b []byte) error {
	*l = languageTable.Decode(string(b)).Value
	return nil
}

// ParseLanguage resolves a language code such as "pt-BR".
func ParseLanguage(s string) (Language, bool) {
	return languageTable.Lookup(s)
}

// Token returns the wire code and whether l is a known language.
func (l Language) Token() (string, bool) {
	return languageTable.Encode(l)
}

// Region is a ccTLD region bias.
type Region uint8

const (
	RegionUnknown Region = iota
	RegionArgentina
	RegionAustria
	RegionAustralia
	RegionBelgium
	RegionBrazil
	RegionCanada
	RegionSwitzerland
	RegionChile
	RegionChina
	RegionColombia
	RegionCzechRepublic
	RegionGermany
	RegionDenmark
	RegionSpain
	RegionFinland
	RegionFrance
	RegionGreece
	RegionHongKong
	RegionIndonesia
	RegionIreland
	RegionIsrael
	RegionIndia
	RegionItaly
	RegionJapan
	RegionSouthKorea
	RegionMexico
	RegionMalaysia
	RegionNigeria
	RegionNetherlands
	RegionNorway
	RegionNewZealand
	RegionPhilippines
	RegionPoland
	RegionPortugal
	RegionRussia
	RegionSweden
	RegionSingapore
	RegionThailand
	RegionTurkey
	RegionTaiwan
	RegionUkraine
	RegionUnitedKingdom
	RegionUnitedStates
	RegionVietnam
	RegionSouthAfrica
)

var regionTable = enum.New("region", RegionUnknown,
	enum.P("ar", RegionArgentina),
	enum.P("at", RegionAustria),
	enum.P("au", RegionAustralia),
	enum.P("be", RegionBelgium),
	enum.P("br", RegionBrazil),
	enum.P("ca", RegionCanada),
	enum.P("ch", RegionSwitzerland),
	enum.P("cl", RegionChile),
	enum.P("cn", RegionChina),
	enum.P("co", RegionColombia),
	enum.P("cz", RegionCzechRepublic),
	enum.P("de", RegionGermany),
	enum.P("dk", RegionDenmark),
	enum.P("es", RegionSpain),
	enum.P("fi", RegionFinland),
	enum.P("fr", RegionFrance),
	enum.P("gr", RegionGreece),
	enum.P("hk", RegionHongKong),
	enum.P("id", RegionIndonesia),
	enum.P("ie", RegionIreland),
	enum.P("il", RegionIsrael),
	enum.P("in", RegionIndia),
	enum.P("it", RegionItaly),
	enum.P("jp", RegionJapan),
	enum.P("kr", RegionSouthKorea),
	enum.P("mx", RegionMexico),
	enum.P("my", RegionMalaysia),
	enum.P("ng", RegionNigeria),
	enum.P("nl", RegionNetherlands),
	enum.P("no", RegionNorway),
	enum.P("nz", RegionNewZealand),
	enum.P("ph", RegionPhilippines),
	enum.P("pl", RegionPoland),
	enum.P("pt", RegionPortugal),
	enum.P("ru", RegionRussia),
	enum.P("se", RegionSweden),
	enum.P("sg", RegionSingapore),
	enum.P("th", RegionThailand),
	enum.P("tr", RegionTurkey),
	enum.P("tw", RegionTaiwan),
	enum.P("ua", RegionUkraine),
	enum.P("uk", RegionUnitedKingdom),
	enum.P("us", RegionUnitedStates),
	enum.P("vn", RegionVietnam),
	enum.P("za", RegionSouthAfrica),
)

func (r Region) String() string {
	return regionTable.Text(r)
}

// MarshalText implements encoding.TextMarshaler.
func (r Region) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Region) UnmarshalText(b []byte) error {
	*r = regionTable.Decode(string(b)).Value
	return nil
}

// ParseRegion resolves a two-letter ccTLD such as "uk".
func ParseRegion(s string) (Region, bool) {
	return regionTable.Lookup(s)
}

// Token returns the wire code and whether r is a known region.
func (r Region) Token() (string, bool) {
	return regionTable.Encode(r)
}
