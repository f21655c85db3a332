package dict

// charReadings is the embedded per-character table. Values are
// comma-joined toned syllables, primary reading first. The set covers
// the high-frequency range plus every character the phrase and surname
// tables reference; the seed loader widens coverage from disk when a
// database is attached.
var charReadings = map[rune]string{
	// particles and function words
	'的': "de,dí,dì",
	'地': "dì,de",
	'得': "dé,de,děi",
	'了': "le,liǎo",
	'着': "zhe,zháo,zhuó,zhāo",
	'是': "shì",
	'不': "bù",
	'没': "méi,mò",
	'很': "hěn",
	'太': "tài",
	'最': "zuì",
	'也': "yě",
	'又': "yòu",
	'就': "jiù",
	'才': "cái",
	'刚': "gāng",
	'已': "yǐ",
	'曾': "céng,zēng",
	'再': "zài",
	'还': "hái,huán",
	'都': "dōu,dū",
	'只': "zhǐ,zhī",
	'非': "fēi",
	'常': "cháng",
	'被': "bèi",
	'让': "ràng",
	'从': "cóng,zòng",
	'向': "xiàng",
	'把': "bǎ,bà",
	'比': "bǐ",
	'跟': "gēn",
	'或': "huò",
	'而': "ér",
	'且': "qiě,jū",
	'但': "dàn",
	'如': "rú",
	'若': "ruò,rě",
	'则': "zé",
	'所': "suǒ",
	'以': "yǐ",
	'之': "zhī",
	'其': "qí",
	'者': "zhě",
	'此': "cǐ",
	'即': "jí",
	'既': "jì",
	'未': "wèi",
	'与': "yǔ,yù,yú",
	'及': "jí",
	'吗': "ma,má,mǎ",
	'呢': "ne,ní",
	'吧': "ba,bā",
	'啊': "a,ā,á,ǎ,à",
	'么': "me,mó,yāo",
	'什': "shén,shí",

	// pronouns and people
	'我': "wǒ",
	'你': "nǐ",
	'您': "nín",
	'他': "tā",
	'她': "tā",
	'它': "tā",
	'们': "men",
	'谁': "shuí,shéi",
	'这': "zhè,zhèi",
	'那': "nà,nèi,nā",
	'哪': "nǎ,něi,na",
	'各': "gè",
	'每': "měi",
	'些': "xiē",
	'人': "rén",
	'民': "mín",
	'众': "zhòng",

	// numbers, time and measures
	'〇': "líng",
	'零': "líng",
	'一': "yī",
	'二': "èr",
	'两': "liǎng",
	'三': "sān",
	'四': "sì",
	'五': "wǔ",
	'六': "liù,lù",
	'七': "qī",
	'八': "bā",
	'九': "jiǔ",
	'十': "shí",
	'百': "bǎi",
	'千': "qiān",
	'万': "wàn,mò",
	'亿': "yì",
	'第': "dì",
	'年': "nián",
	'月': "yuè",
	'日': "rì",
	'天': "tiān",
	'时': "shí",
	'分': "fēn,fèn",
	'秒': "miǎo",
	'点': "diǎn",
	'半': "bàn",
	'号': "hào,háo",
	'今': "jīn",
	'明': "míng",
	'昨': "zuó",
	'早': "zǎo",
	'晚': "wǎn",
	'春': "chūn",
	'夏': "xià",
	'秋': "qiū",
	'冬': "dōng",
	'季': "jì",
	'期': "qī",
	'间': "jiān,jiàn",
	'个': "gè,gě",
	'本': "běn",
	'件': "jiàn",
	'张': "zhāng",
	'条': "tiáo",
	'块': "kuài",
	'位': "wèi",
	'次': "cì",
	'遍': "biàn",
	'层': "céng",
	'斤': "jīn",
	'米': "mǐ",
	'尺': "chǐ,chě",

	// heteronym core
	'行': "xíng,háng,hàng,héng",
	'重': "zhòng,chóng",
	'长': "cháng,zhǎng",
	'乐': "lè,yuè,yào,lào",
	'发': "fā,fà",
	'为': "wéi,wèi",
	'会': "huì,kuài",
	'和': "hé,hè,huó,huò,hú",
	'觉': "jué,jiào",
	'数': "shù,shǔ,shuò",
	'空': "kōng,kòng",
	'省': "shěng,xǐng",
	'参': "cān,shēn,cēn",
	'差': "chà,chā,chāi,cī",
	'弹': "dàn,tán",
	'强': "qiáng,qiǎng,jiàng",
	'干': "gān,gàn",
	'降': "jiàng,xiáng",
	'落': "luò,lào,là",
	'露': "lù,lòu",
	'校': "xiào,jiào",
	'血': "xuè,xiě",
	'薄': "báo,bó,bò",
	'剥': "bō,bāo",
	'率': "lǜ,shuài",
	'背': "bèi,bēi",
	'兴': "xīng,xìng",
	'脏': "zàng,zāng",
	'倒': "dǎo,dào",
	'假': "jiǎ,jià",
	'扫': "sǎo,sào",
	'缝': "féng,fèng",
	'传': "chuán,zhuàn",
	'曲': "qū,qǔ",
	'调': "diào,tiáo",
	'处': "chù,chǔ",
	'相': "xiāng,xiàng",
	'将': "jiāng,jiàng",
	'便': "biàn,pián",
	'读': "dú,dòu",
	'种': "zhǒng,zhòng",
	'切': "qiē,qiè",
	'好': "hǎo,hào",
	'看': "kàn,kān",
	'中': "zhōng,zhòng",
	'难': "nán,nàn",
	'应': "yīng,yìng",
	'教': "jiào,jiāo",
	'藏': "cáng,zàng",
	'几': "jǐ,jī",
	'更': "gèng,gēng",
	'结': "jié,jiē",
	'给': "gěi,jǐ",
	'色': "sè,shǎi",
	'角': "jiǎo,jué",
	'系': "xì,jì",
	'度': "dù,duó",
	'量': "liàng,liáng",
	'单': "dān,chán,shàn",
	'仇': "chóu,qiú",
	'区': "qū,ōu",
	'查': "chá,zhā",
	'解': "jiě,jiè,xiè",
	'朴': "pǔ,piáo,pò",
	'折': "zhé,shé,zhē",
	'纪': "jì,jǐ",
	'燕': "yàn,yān",
	'华': "huá,huà,huā",
	'任': "rèn,rén",
	'盖': "gài,gě",
	'尉': "wèi,yù",
	'拓': "tuò,tà",
	'澹': "dàn,tán",
	'葛': "gé,gě",
	'侯': "hóu,hòu",
	'要': "yào,yāo",

	// nature and places
	'山': "shān",
	'川': "chuān",
	'水': "shuǐ",
	'河': "hé",
	'湖': "hú",
	'江': "jiāng",
	'海': "hǎi",
	'岛': "dǎo",
	'林': "lín",
	'森': "sēn",
	'树': "shù",
	'花': "huā",
	'草': "cǎo",
	'叶': "yè,xié",
	'根': "gēn",
	'枝': "zhī",
	'果': "guǒ",
	'石': "shí,dàn",
	'沙': "shā,shà",
	'泥': "ní,nì",
	'土': "tǔ",
	'云': "yún",
	'雨': "yǔ,yù",
	'雪': "xuě",
	'风': "fēng,fěng",
	'雷': "léi",
	'冰': "bīng",
	'霜': "shuāng",
	'雾': "wù",
	'星': "xīng",
	'光': "guāng",
	'火': "huǒ",
	'烟': "yān",
	'田': "tián",
	'路': "lù",
	'桥': "qiáo",
	'井': "jǐng",
	'泉': "quán",
	'波': "bō",
	'浪': "làng",
	'潮': "cháo",
	'国': "guó",
	'京': "jīng",
	'北': "běi",
	'南': "nán,nā",
	'西': "xī",
	'东': "dōng",
	'上': "shàng",
	'下': "xià",
	'左': "zuǒ",
	'右': "yòu",
	'前': "qián",
	'后': "hòu",
	'内': "nèi",
	'外': "wài",
	'广': "guǎng",
	'州': "zhōu",
	'深': "shēn",
	'圳': "zhèn",
	'香': "xiāng",
	'港': "gǎng",
	'台': "tái",
	'湾': "wān",
	'城': "chéng",
	'镇': "zhèn",
	'乡': "xiāng",
	'村': "cūn",
	'县': "xiàn",
	'街': "jiē",
	'巷': "xiàng,hàng",
	'市': "shì",
	'世': "shì",
	'界': "jiè",

	// animals
	'马': "mǎ",
	'牛': "niú",
	'羊': "yáng,xiáng",
	'猪': "zhū",
	'狗': "gǒu",
	'猫': "māo",
	'鸡': "jī",
	'鸭': "yā",
	'鱼': "yú",
	'鸟': "niǎo,diǎo",
	'虫': "chóng",
	'龙': "lóng",
	'虎': "hǔ",
	'兔': "tù",
	'鼠': "shǔ",
	'蛇': "shé",
	'猴': "hóu",
	'熊': "xióng",
	'鹿': "lù",
	'象': "xiàng",
	'鹰': "yīng",

	// body and life
	'头': "tóu",
	'脸': "liǎn",
	'眼': "yǎn",
	'耳': "ěr",
	'鼻': "bí",
	'口': "kǒu",
	'嘴': "zuǐ",
	'牙': "yá",
	'舌': "shé",
	'眉': "méi",
	'肩': "jiān",
	'胸': "xiōng",
	'腰': "yāo",
	'指': "zhǐ",
	'腿': "tuǐ",
	'脚': "jiǎo,jué",
	'骨': "gǔ,gū",
	'肉': "ròu",
	'皮': "pí",
	'毛': "máo",
	'心': "xīn",
	'肝': "gān",
	'肺': "fèi",
	'胃': "wèi",
	'肠': "cháng",
	'脑': "nǎo",
	'手': "shǒu",
	'足': "zú",

	// family
	'爸': "bà",
	'妈': "mā",
	'哥': "gē",
	'姐': "jiě",
	'弟': "dì,tì",
	'妹': "mèi",
	'儿': "ér",
	'女': "nǚ,rǔ",
	'男': "nán",
	'父': "fù",
	'母': "mǔ",
	'爷': "yé",
	'奶': "nǎi",
	'叔': "shū",
	'姨': "yí",
	'舅': "jiù",
	'婆': "pó",
	'孩': "hái",
	'娃': "wá",
	'夫': "fū,fú",
	'妻': "qī,qì",
	'伴': "bàn",
	'客': "kè",
	'宾': "bīn",
	'朋': "péng",
	'友': "yǒu",

	// verbs
	'说': "shuō,shuì",
	'讲': "jiǎng",
	'问': "wèn",
	'答': "dá,dā",
	'听': "tīng",
	'写': "xiě",
	'念': "niàn",
	'想': "xiǎng",
	'知': "zhī,zhì",
	'道': "dào",
	'懂': "dǒng",
	'爱': "ài",
	'喜': "xǐ",
	'怕': "pà",
	'恨': "hèn",
	'忘': "wàng",
	'走': "zǒu",
	'跑': "pǎo",
	'飞': "fēi",
	'游': "yóu",
	'坐': "zuò",
	'站': "zhàn",
	'躺': "tǎng",
	'吃': "chī",
	'喝': "hē,hè",
	'睡': "shuì",
	'醒': "xǐng",
	'买': "mǎi",
	'卖': "mài",
	'送': "sòng",
	'拿': "ná",
	'找': "zhǎo",
	'丢': "diū",
	'穿': "chuān",
	'脱': "tuō",
	'洗': "xǐ",
	'用': "yòng",
	'做': "zuò",
	'作': "zuò,zuō",
	'造': "zào",
	'建': "jiàn",
	'修': "xiū",
	'换': "huàn",
	'变': "biàn",
	'帮': "bāng",
	'救': "jiù",
	'等': "děng",
	'停': "tíng",
	'留': "liú",
	'离': "lí",
	'回': "huí",
	'进': "jìn",
	'起': "qǐ",
	'升': "shēng",
	'收': "shōu",
	'付': "fù",
	'取': "qǔ",
	'存': "cún",
	'借': "jiè",
	'赢': "yíng",
	'输': "shū",
	'选': "xuǎn",
	'投': "tóu",
	'拉': "lā,lá",
	'推': "tuī",
	'抱': "bào",
	'握': "wò",
	'提': "tí,dī",
	'抬': "tái",
	'举': "jǔ",
	'扔': "rēng",
	'接': "jiē",
	'打': "dǎ,dá",
	'踢': "tī",
	'砍': "kǎn",
	'挖': "wā",
	'浇': "jiāo",
	'摘': "zhāi",
	'采': "cǎi",
	'喊': "hǎn",
	'叫': "jiào",
	'唱': "chàng",
	'跳': "tiào",
	'笑': "xiào",
	'哭': "kū",
	'开': "kāi",
	'关': "guān",
	'来': "lái",
	'去': "qù",
	'出': "chū",
	'入': "rù",
	'到': "dào",
	'过': "guò,guō",
	'见': "jiàn,xiàn",
	'请': "qǐng",
	'谢': "xiè",

	// qualities
	'大': "dà,dài",
	'小': "xiǎo",
	'新': "xīn",
	'旧': "jiù",
	'高': "gāo",
	'低': "dī",
	'短': "duǎn",
	'宽': "kuān",
	'窄': "zhǎi",
	'厚': "hòu",
	'瘦': "shòu",
	'胖': "pàng",
	'肥': "féi",
	'轻': "qīng",
	'快': "kuài",
	'慢': "màn",
	'远': "yuǎn",
	'近': "jìn",
	'冷': "lěng",
	'热': "rè",
	'暖': "nuǎn",
	'凉': "liáng,liàng",
	'湿': "shī",
	'亮': "liàng",
	'暗': "àn",
	'黑': "hēi",
	'白': "bái",
	'红': "hóng,gōng",
	'黄': "huáng",
	'蓝': "lán",
	'绿': "lǜ,lù",
	'青': "qīng",
	'紫': "zǐ",
	'灰': "huī",
	'粉': "fěn",
	'多': "duō",
	'少': "shǎo,shào",
	'全': "quán",
	'满': "mǎn",
	'真': "zhēn",
	'错': "cuò",
	'美': "měi",
	'丑': "chǒu",
	'贵': "guì",
	'贱': "jiàn",
	'富': "fù",
	'穷': "qióng",
	'安': "ān",
	'危': "wēi",
	'险': "xiǎn",
	'静': "jìng",
	'闹': "nào",
	'忙': "máng",
	'累': "lèi,léi,lěi",
	'饿': "è",
	'饱': "bǎo",
	'渴': "kě",
	'甜': "tián",
	'苦': "kǔ",
	'酸': "suān",
	'辣': "là",
	'咸': "xián",
	'臭': "chòu,xiù",
	'对': "duì",

	// society, study and work
	'家': "jiā",
	'室': "shì",
	'厅': "tīng",
	'厨': "chú",
	'卫': "wèi",
	'楼': "lóu",
	'梯': "tī",
	'窗': "chuāng",
	'墙': "qiáng",
	'顶': "dǐng",
	'院': "yuàn",
	'园': "yuán",
	'场': "chǎng,cháng",
	'店': "diàn",
	'铺': "pù,pū",
	'馆': "guǎn",
	'局': "jú",
	'厂': "chǎng",
	'课': "kè",
	'班': "bān",
	'级': "jí",
	'考': "kǎo",
	'试': "shì",
	'题': "tí",
	'笔': "bǐ",
	'纸': "zhǐ",
	'墨': "mò",
	'画': "huà",
	'图': "tú",
	'表': "biǎo",
	'册': "cè",
	'章': "zhāng",
	'篇': "piān",
	'页': "yè",
	'词': "cí",
	'典': "diǎn",
	'句': "jù,gōu",
	'段': "duàn",
	'符': "fú",
	'码': "mǎ",
	'网': "wǎng",
	'具': "jù",
	'器': "qì",
	'械': "xiè",
	'工': "gōng",
	'农': "nóng",
	'商': "shāng",
	'医': "yī",
	'药': "yào,yuè",
	'病': "bìng",
	'疼': "téng",
	'治': "zhì",
	'养': "yǎng",
	'钱': "qián",
	'币': "bì",
	'价': "jià,jiè",
	'费': "fèi",
	'税': "shuì",
	'账': "zhàng",
	'货': "huò",
	'品': "pǐn",
	'牌': "pái",
	'售': "shòu",
	'购': "gòu",

	// characters referenced by the phrase table
	'银': "yín",
	'业': "yè",
	'情': "qíng",
	'动': "dòng",
	'自': "zì",
	'车': "chē,jū",
	'庆': "qìng",
	'复': "fù",
	'严': "yán",
	'体': "tǐ",
	'音': "yīn",
	'欢': "huān",
	'成': "chéng",
	'首': "shǒu",
	'有': "yǒu,yòu",
	'归': "guī",
	'目': "mù",
	'确': "què",
	'方': "fāng",
	'记': "jì",
	'感': "gǎn",
	'学': "xué",
	'字': "zì",
	'无': "wú",
	'气': "qì",
	'闲': "xián",
	'节': "jié,jiē",
	'反': "fǎn",
	'加': "jiā",
	'别': "bié,biè",
	'距': "jù",
	'子': "zǐ",
	'导': "dǎo",
	'琴': "qín",
	'勉': "miǎn",
	'倔': "jué,juè",
	'净': "jìng",
	'活': "huó",
	'部': "bù",
	'能': "néng",
	'暴': "bào,pù",
	'面': "miàn",
	'液': "yè",
	'献': "xiàn",
	'荷': "hé,hè",
	'片': "piàn,piān",
	'削': "xuē,xiāo",
	'效': "xiào",
	'概': "gài",
	'领': "lǐng",
	'包': "bāo",
	'景': "jǐng",
	'趣': "qù",
	'奋': "fèn",
	'肮': "āng",
	'摔': "shuāi",
	'影': "yǐng",
	'退': "tuì",
	'放': "fàng",
	'话': "huà",
	'裁': "cái",
	'隙': "xì",
	'宣': "xuān",
	'歌': "gē",
	'弯': "wān",
	'线': "xiàn",
	'声': "shēng",
	'整': "zhěng",
	'理': "lǐ",
	'信': "xìn",
	'照': "zhào",
	'军': "jūn",
	'麻': "má",
	'顺': "shùn",
	'宜': "yí",
	'书': "shū",
	'朗': "lǎng",
	'类': "lèi",
	'植': "zhí",
	'现': "xiàn",
	'展': "zhǎn",
	'因': "yīn",
	'认': "rèn",
	'机': "jī",
	'计': "jì",
	'平': "píng",
	'附': "fù",
	'亲': "qīn,qìng",
	'奇': "qí,jī",
	'守': "shǒu",
	'奖': "jiǎng",
	'毒': "dú",
	'析': "xī",
	'房': "fáng",
	'困': "kùn",
	'灾': "zāi",
	'该': "gāi",
	'师': "shī",
	'育': "yù",
	'族': "zú",
	'躲': "duǒ",
	'乎': "hū",
	'束': "shù",
	'团': "tuán",
	'予': "yǔ,yú",
	'颜': "yán",
	'主': "zhǔ",
	'温': "wēn",
	'在': "zài",
	'漂': "piào,piāo,piǎo",
	'汉': "hàn",
	'语': "yǔ,yù",
	'文': "wén",
	'英': "yīng",
	'拼': "pīn",
	'电': "diàn",
	'老': "lǎo",
	'生': "shēng",
	'韵': "yùn",

	// characters referenced by the surname table
	'欧': "ōu",
	'阳': "yáng",
	'于': "yú",
	'迟': "chí",
	'令': "lìng,líng,lǐng",
	'狐': "hú",
	'孙': "sūn",
	'皇': "huáng",
	'甫': "fǔ",
	'司': "sī",
	'徒': "tú",
	'诸': "zhū",
	'闻': "wén",
	'慕': "mù",
	'容': "róng",
	'宇': "yǔ",
	'贺': "hè",
	'兰': "lán",
	'跋': "bá",
	'官': "guān",
	'门': "mén",
	'宫': "gōng",
	'里': "lǐ",
	'呼': "hū",
	'延': "yán",
	'公': "gōng",
	'丘': "qiū",

	// traditional variants
	'銀': "yín",
	'國': "guó",
	'漢': "hàn",
	'語': "yǔ,yù",
	'樂': "lè,yuè,yào,lào",
	'長': "cháng,zhǎng",
	'慶': "qìng",
	'學': "xué",
	'門': "mén",
	'馬': "mǎ",
	'鳥': "niǎo,diǎo",
	'魚': "yú",
	'龍': "lóng",
	'車': "chē,jū",
	'東': "dōng",
	'華': "huá,huà,huā",
	'愛': "ài",
	'時': "shí",
	'間': "jiān,jiàn",
	'書': "shū",
	'話': "huà",
	'電': "diàn",
	'腦': "nǎo",
	'飛': "fēi",
	'機': "jī",
	'聽': "tīng",
	'說': "shuō,shuì",
	'讀': "dú,dòu",
	'寫': "xiě",
	'點': "diǎn",
	'師': "shī",
	'幾': "jǐ,jī",
	'發': "fā,fà",
	'頭': "tóu",
	'髮': "fà",
	'體': "tǐ",
	'廣': "guǎng",
	'灣': "wān",
	'臺': "tái",
	'錢': "qián",
	'風': "fēng,fěng",
	'雲': "yún",
	'陽': "yáng",
	'鐘': "zhōng",
	'歲': "suì",
	'岁': "suì",

	// rare-block samples
	'㐀': "qiū",
}
