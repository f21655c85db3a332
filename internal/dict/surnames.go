package dict

// surnameReadings holds family-name pronunciations that differ from a
// character's everyday primary reading, plus the classical compound
// surnames. Consulted before the phrase table when surname mode is on.
var surnameReadings = map[string]string{
	// single-character surnames with a distinct reading
	"单": "shàn",
	"曾": "zēng",
	"仇": "qiú",
	"区": "ōu",
	"查": "zhā",
	"解": "xiè",
	"朴": "piáo",
	"乐": "yuè",
	"折": "shé",
	"纪": "jǐ",
	"燕": "yān",
	"华": "huà",
	"任": "rén",
	"薄": "bó",
	"盖": "gě",

	// compound surnames
	"欧阳": "ōu yáng",
	"单于": "chán yú",
	"尉迟": "yù chí",
	"令狐": "líng hú",
	"长孙": "zhǎng sūn",
	"澹台": "tán tái",
	"皇甫": "huáng fǔ",
	"司徒": "sī tú",
	"司马": "sī mǎ",
	"诸葛": "zhū gé",
	"闻人": "wén rén",
	"东方": "dōng fāng",
	"夏侯": "xià hóu",
	"慕容": "mù róng",
	"宇文": "yǔ wén",
	"贺兰": "hè lán",
	"拓跋": "tuò bá",
	"上官": "shàng guān",
	"西门": "xī mén",
	"南宫": "nán gōng",
	"百里": "bǎi lǐ",
	"呼延": "hū yán",
	"公孙": "gōng sūn",
	"公羊": "gōng yáng",
	"左丘": "zuǒ qiū",
	"第五": "dì wǔ",
}
