package dict

// phraseReadings disambiguates multi-pronunciation characters in
// context. Keys are simplified Chinese; values hold one toned syllable
// per character. Traditional phrase coverage is produced by the
// processor's conversion pass and merged at load time.
var phraseReadings = map[string]string{
	// 行
	"银行":  "yín háng",
	"行业":  "háng yè",
	"行情":  "háng qíng",
	"分行":  "fēn háng",
	"行动":  "xíng dòng",
	"行为":  "xíng wéi",
	"自行车": "zì xíng chē",

	// 重
	"重庆": "chóng qìng",
	"重新": "chóng xīn",
	"重复": "chóng fù",
	"重要": "zhòng yào",
	"严重": "yán zhòng",
	"体重": "tǐ zhòng",

	// 乐
	"音乐": "yīn yuè",
	"乐器": "yuè qì",
	"快乐": "kuài lè",
	"欢乐": "huān lè",

	// 长
	"长城": "cháng chéng",
	"长江": "cháng jiāng",
	"长期": "cháng qī",
	"成长": "chéng zhǎng",
	"长大": "zhǎng dà",
	"校长": "xiào zhǎng",

	// 都
	"都市": "dū shì",
	"首都": "shǒu dū",
	"都是": "dōu shì",

	// 还
	"还是": "hái shì",
	"还有": "hái yǒu",
	"归还": "guī huán",

	// 的 / 地 / 得
	"目的": "mù dì",
	"的确": "dí què",
	"地方": "dì fāng",
	"土地": "tǔ dì",
	"得到": "dé dào",
	"觉得": "jué de",
	"记得": "jì de",

	// 觉
	"睡觉": "shuì jiào",
	"感觉": "gǎn jué",
	"自觉": "zì jué",

	// 数
	"数学": "shù xué",
	"数字": "shù zì",
	"无数": "wú shù",

	// 空
	"空气": "kōng qì",
	"天空": "tiān kōng",
	"空调": "kōng tiáo",
	"空闲": "kòng xián",

	// 省
	"省长": "shěng zhǎng",
	"节省": "jié shěng",
	"反省": "fǎn xǐng",

	// 参 / 差
	"参加": "cān jiā",
	"人参": "rén shēn",
	"参差": "cēn cī",
	"差别": "chā bié",
	"差距": "chā jù",
	"出差": "chū chāi",

	// 弹 / 强
	"子弹": "zǐ dàn",
	"导弹": "dǎo dàn",
	"弹琴": "tán qín",
	"强大": "qiáng dà",
	"勉强": "miǎn qiǎng",
	"倔强": "jué jiàng",

	// 干
	"干净": "gān jìng",
	"干活": "gàn huó",
	"干部": "gàn bù",
	"能干": "néng gàn",

	// 降 / 落 / 露
	"降落": "jiàng luò",
	"下降": "xià jiàng",
	"投降": "tóu xiáng",
	"落后": "luò hòu",
	"角落": "jiǎo luò",
	"露水": "lù shuǐ",
	"暴露": "bào lù",
	"露面": "lòu miàn",

	// 校 / 血 / 薄 / 剥 / 率
	"学校": "xué xiào",
	"校对": "jiào duì",
	"血液": "xuè yè",
	"献血": "xiàn xuè",
	"薄荷": "bò hé",
	"单薄": "dān bó",
	"薄片": "báo piàn",
	"剥削": "bō xuē",
	"剥皮": "bāo pí",
	"效率": "xiào lǜ",
	"概率": "gài lǜ",
	"率领": "shuài lǐng",

	// 背 / 兴 / 脏 / 倒
	"背包": "bēi bāo",
	"背景": "bèi jǐng",
	"后背": "hòu bèi",
	"高兴": "gāo xìng",
	"兴趣": "xìng qù",
	"兴奋": "xīng fèn",
	"心脏": "xīn zàng",
	"肮脏": "āng zāng",
	"摔倒": "shuāi dǎo",
	"倒影": "dào yǐng",
	"倒退": "dào tuì",

	// 假 / 扫 / 缝
	"假期": "jià qī",
	"放假": "fàng jià",
	"假话": "jiǎ huà",
	"真假": "zhēn jiǎ",
	"打扫": "dǎ sǎo",
	"扫地": "sǎo dì",
	"扫把": "sào bǎ",
	"裁缝": "cái féng",
	"缝隙": "fèng xì",

	// 传 / 曲 / 调 / 处 / 相 / 将
	"传说": "chuán shuō",
	"宣传": "xuān chuán",
	"传记": "zhuàn jì",
	"自传": "zì zhuàn",
	"歌曲": "gē qǔ",
	"弯曲": "wān qū",
	"曲线": "qū xiàn",
	"调查": "diào chá",
	"声调": "shēng diào",
	"调整": "tiáo zhěng",
	"处理": "chǔ lǐ",
	"相处": "xiāng chǔ",
	"到处": "dào chù",
	"好处": "hǎo chù",
	"相信": "xiāng xìn",
	"照相": "zhào xiàng",
	"首相": "shǒu xiàng",
	"将来": "jiāng lái",
	"将军": "jiàng jūn",
	"麻将": "má jiàng",

	// 便 / 读 / 种 / 发
	"方便": "fāng biàn",
	"顺便": "shùn biàn",
	"便宜": "pián yí",
	"读书": "dú shū",
	"朗读": "lǎng dú",
	"句读": "jù dòu",
	"种子": "zhǒng zǐ",
	"种类": "zhǒng lèi",
	"种植": "zhòng zhí",
	"发现": "fā xiàn",
	"发展": "fā zhǎn",
	"头发": "tóu fà",

	// 为 / 会 / 和 / 切
	"因为": "yīn wèi",
	"为了": "wèi le",
	"成为": "chéng wéi",
	"认为": "rèn wéi",
	"开会": "kāi huì",
	"机会": "jī huì",
	"会计": "kuài jì",
	"和平": "hé píng",
	"附和": "fù hè",
	"一切": "yī qiè",
	"切开": "qiē kāi",
	"亲切": "qīn qiè",

	// 好 / 看 / 中 / 分 / 间
	"爱好": "ài hào",
	"好奇": "hào qí",
	"看见": "kàn jiàn",
	"看守": "kān shǒu",
	"中国": "zhōng guó",
	"中心": "zhōng xīn",
	"中奖": "zhòng jiǎng",
	"中毒": "zhòng dú",
	"分析": "fēn xī",
	"十分": "shí fēn",
	"部分": "bù fèn",
	"分量": "fèn liàng",
	"时间": "shí jiān",
	"房间": "fáng jiān",
	"间接": "jiàn jiē",

	// 难 / 应 / 教 / 藏 / 几 / 更
	"困难": "kùn nán",
	"难过": "nán guò",
	"灾难": "zāi nàn",
	"应该": "yīng gāi",
	"应用": "yìng yòng",
	"反应": "fǎn yìng",
	"教师": "jiào shī",
	"教育": "jiào yù",
	"教书": "jiāo shū",
	"西藏": "xī zàng",
	"藏族": "zàng zú",
	"躲藏": "duǒ cáng",
	"几乎": "jī hū",
	"几个": "jǐ gè",
	"更加": "gèng jiā",
	"更新": "gēng xīn",

	// 结 / 给 / 色 / 角 / 系
	"结果": "jié guǒ",
	"结束": "jié shù",
	"团结": "tuán jié",
	"给予": "jǐ yǔ",
	"颜色": "yán sè",
	"角色": "jué sè",
	"主角": "zhǔ jué",
	"角度": "jiǎo dù",
	"温度": "wēn dù",
	"关系": "guān xì",

	// common words
	"今天": "jīn tiān",
	"明天": "míng tiān",
	"昨天": "zuó tiān",
	"现在": "xiàn zài",
	"世界": "shì jiè",
	"朋友": "péng yǒu",
	"漂亮": "piào liàng",
	"什么": "shén me",
	"我们": "wǒ men",
	"谢谢": "xiè xiè",
	"再见": "zài jiàn",
	"汉语": "hàn yǔ",
	"中文": "zhōng wén",
	"英语": "yīng yǔ",
	"拼音": "pīn yīn",
	"电脑": "diàn nǎo",
	"手机": "shǒu jī",
	"电话": "diàn huà",
	"老师": "lǎo shī",
	"学生": "xué shēng",
	"大学": "dà xué",
	"银河": "yín hé",

	// place names
	"北京": "běi jīng",
	"南京": "nán jīng",
	"上海": "shàng hǎi",
	"广州": "guǎng zhōu",
	"深圳": "shēn zhèn",
	"香港": "xiāng gǎng",
	"台湾": "tái wān",
}
