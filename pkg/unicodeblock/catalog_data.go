package unicodeblock

// UnicodeVersion is the Blocks.txt revision the standard table follows.
const UnicodeVersion = "15.1.0"

// standardBlocks is sorted by name in byte order. Ranges follow Blocks.txt;
// arabicExtended and kanaExtended keep their pre-12.0 names for the -A blocks.
var standardBlocks = [...]Block{
	{"adlam", 0x1E900, 0x1E95F},
	{"aegeanNumbers", 0x10100, 0x1013F},
	{"ahom", 0x11700, 0x1174F},
	{"alchemicalSymbols", 0x1F700, 0x1F77F},
	{"alphabeticPresentationForms", 0xFB00, 0xFB4F},
	{"anatolianHieroglyphs", 0x14400, 0x1467F},
	{"ancientGreekMusicalNotation", 0x1D200, 0x1D24F},
	{"ancientGreekNumbers", 0x10140, 0x1018F},
	{"ancientSymbols", 0x10190, 0x101CF},
	{"arabic", 0x0600, 0x06FF},
	{"arabicExtended", 0x08A0, 0x08FF},
	{"arabicExtendedB", 0x0870, 0x089F},
	{"arabicExtendedC", 0x10EC0, 0x10EFF},
	{"arabicMathematicalAlphabeticSymbols", 0x1EE00, 0x1EEFF},
	{"arabicPresentationFormsA", 0xFB50, 0xFDFF},
	{"arabicPresentationFormsB", 0xFE70, 0xFEFF},
	{"arabicSupplement", 0x0750, 0x077F},
	{"armenian", 0x0530, 0x058F},
	{"arrows", 0x2190, 0x21FF},
	{"avestan", 0x10B00, 0x10B3F},
	{"balinese", 0x1B00, 0x1B7F},
	{"bamum", 0xA6A0, 0xA6FF},
	{"bamumSupplement", 0x16800, 0x16A3F},
	{"basicLatin", 0x0000, 0x007F},
	{"bassaVah", 0x16AD0, 0x16AFF},
	{"batak", 0x1BC0, 0x1BFF},
	{"bengali", 0x0980, 0x09FF},
	{"bhaiksuki", 0x11C00, 0x11C6F},
	{"blockElements", 0x2580, 0x259F},
	{"bopomofo", 0x3100, 0x312F},
	{"bopomofoExtended", 0x31A0, 0x31BF},
	{"boxDrawing", 0x2500, 0x257F},
	{"brahmi", 0x11000, 0x1107F},
	{"braillePatterns", 0x2800, 0x28FF},
	{"buginese", 0x1A00, 0x1A1F},
	{"buhid", 0x1740, 0x175F},
	{"byzantineMusicalSymbols", 0x1D000, 0x1D0FF},
	{"carian", 0x102A0, 0x102DF},
	{"caucasianAlbanian", 0x10530, 0x1056F},
	{"chakma", 0x11100, 0x1114F},
	{"cham", 0xAA00, 0xAA5F},
	{"cherokee", 0x13A0, 0x13FF},
	{"cherokeeSupplement", 0xAB70, 0xABBF},
	{"chessSymbols", 0x1FA00, 0x1FA6F},
	{"chorasmian", 0x10FB0, 0x10FDF},
	{"cjkCompatibility", 0x3300, 0x33FF},
	{"cjkCompatibilityForms", 0xFE30, 0xFE4F},
	{"cjkCompatibilityIdeographs", 0xF900, 0xFAFF},
	{"cjkCompatibilityIdeographsSupplement", 0x2F800, 0x2FA1F},
	{"cjkRadicalsSupplement", 0x2E80, 0x2EFF},
	{"cjkStrokes", 0x31C0, 0x31EF},
	{"cjkSymbolsandPunctuation", 0x3000, 0x303F},
	{"cjkUnifiedIdeographs", 0x4E00, 0x9FFF},
	{"cjkUnifiedIdeographsExtensionA", 0x3400, 0x4DBF},
	{"cjkUnifiedIdeographsExtensionB", 0x20000, 0x2A6DF},
	{"cjkUnifiedIdeographsExtensionC", 0x2A700, 0x2B73F},
	{"cjkUnifiedIdeographsExtensionD", 0x2B740, 0x2B81F},
	{"cjkUnifiedIdeographsExtensionE", 0x2B820, 0x2CEAF},
	{"cjkUnifiedIdeographsExtensionF", 0x2CEB0, 0x2EBEF},
	{"cjkUnifiedIdeographsExtensionG", 0x30000, 0x3134F},
	{"cjkUnifiedIdeographsExtensionH", 0x31350, 0x323AF},
	{"cjkUnifiedIdeographsExtensionI", 0x2EBF0, 0x2EE5F},
	{"combiningDiacriticalMarks", 0x0300, 0x036F},
	{"combiningDiacriticalMarksExtended", 0x1AB0, 0x1AFF},
	{"combiningDiacriticalMarksSupplement", 0x1DC0, 0x1DFF},
	{"combiningDiacriticalMarksforSymbols", 0x20D0, 0x20FF},
	{"combiningHalfMarks", 0xFE20, 0xFE2F},
	{"commonIndicNumberForms", 0xA830, 0xA83F},
	{"controlPictures", 0x2400, 0x243F},
	{"coptic", 0x2C80, 0x2CFF},
	{"copticEpactNumbers", 0x102E0, 0x102FF},
	{"countingRodNumerals", 0x1D360, 0x1D37F},
	{"cuneiform", 0x12000, 0x123FF},
	{"cuneiformNumbersandPunctuation", 0x12400, 0x1247F},
	{"currencySymbols", 0x20A0, 0x20CF},
	{"cypriotSyllabary", 0x10800, 0x1083F},
	{"cyproMinoan", 0x12F90, 0x12FFF},
	{"cyrillic", 0x0400, 0x04FF},
	{"cyrillicExtendedA", 0x2DE0, 0x2DFF},
	{"cyrillicExtendedB", 0xA640, 0xA69F},
	{"cyrillicExtendedC", 0x1C80, 0x1C8F},
	{"cyrillicExtendedD", 0x1E030, 0x1E08F},
	{"cyrillicSupplement", 0x0500, 0x052F},
	{"deseret", 0x10400, 0x1044F},
	{"devanagari", 0x0900, 0x097F},
	{"devanagariExtended", 0xA8E0, 0xA8FF},
	{"devanagariExtendedA", 0x11B00, 0x11B5F},
	{"dingbats", 0x2700, 0x27BF},
	{"divesAkuru", 0x11900, 0x1195F},
	{"dogra", 0x11800, 0x1184F},
	{"dominoTiles", 0x1F030, 0x1F09F},
	{"duployan", 0x1BC00, 0x1BC9F},
	{"earlyDynasticCuneiform", 0x12480, 0x1254F},
	{"egyptianHieroglyphFormatControls", 0x13430, 0x1345F},
	{"egyptianHieroglyphs", 0x13000, 0x1342F},
	{"elbasan", 0x10500, 0x1052F},
	{"elymaic", 0x10FE0, 0x10FFF},
	{"emoticons", 0x1F600, 0x1F64F},
	{"enclosedAlphanumericSupplement", 0x1F100, 0x1F1FF},
	{"enclosedAlphanumerics", 0x2460, 0x24FF},
	{"enclosedCJKLettersandMonths", 0x3200, 0x32FF},
	{"enclosedIdeographicSupplement", 0x1F200, 0x1F2FF},
	{"ethiopic", 0x1200, 0x137F},
	{"ethiopicExtended", 0x2D80, 0x2DDF},
	{"ethiopicExtendedA", 0xAB00, 0xAB2F},
	{"ethiopicExtendedB", 0x1E7E0, 0x1E7FF},
	{"ethiopicSupplement", 0x1380, 0x139F},
	{"generalPunctuation", 0x2000, 0x206F},
	{"geometricShapes", 0x25A0, 0x25FF},
	{"geometricShapesExtended", 0x1F780, 0x1F7FF},
	{"georgian", 0x10A0, 0x10FF},
	{"georgianExtended", 0x1C90, 0x1CBF},
	{"georgianSupplement", 0x2D00, 0x2D2F},
	{"glagolitic", 0x2C00, 0x2C5F},
	{"glagoliticSupplement", 0x1E000, 0x1E02F},
	{"gothic", 0x10330, 0x1034F},
	{"grantha", 0x11300, 0x1137F},
	{"greekExtended", 0x1F00, 0x1FFF},
	{"greekandCoptic", 0x0370, 0x03FF},
	{"gujarati", 0x0A80, 0x0AFF},
	{"gunjalaGondi", 0x11D60, 0x11DAF},
	{"gurmukhi", 0x0A00, 0x0A7F},
	{"halfwidthandFullwidthForms", 0xFF00, 0xFFEF},
	{"hangulCompatibilityJamo", 0x3130, 0x318F},
	{"hangulJamo", 0x1100, 0x11FF},
	{"hangulJamoExtendedA", 0xA960, 0xA97F},
	{"hangulJamoExtendedB", 0xD7B0, 0xD7FF},
	{"hangulSyllables", 0xAC00, 0xD7AF},
	{"hanifiRohingya", 0x10D00, 0x10D3F},
	{"hanunoo", 0x1720, 0x173F},
	{"hatran", 0x108E0, 0x108FF},
	{"hebrew", 0x0590, 0x05FF},
	{"highPrivateUseSurrogates", 0xDB80, 0xDBFF},
	{"highSurrogates", 0xD800, 0xDB7F},
	{"hiragana", 0x3040, 0x309F},
	{"ideographicDescriptionCharacters", 0x2FF0, 0x2FFF},
	{"ideographicSymbolsandPunctuation", 0x16FE0, 0x16FFF},
	{"imperialAramaic", 0x10840, 0x1085F},
	{"indicSiyaqNumbers", 0x1EC70, 0x1ECBF},
	{"inscriptionalPahlavi", 0x10B60, 0x10B7F},
	{"inscriptionalParthian", 0x10B40, 0x10B5F},
	{"ipaExtensions", 0x0250, 0x02AF},
	{"javanese", 0xA980, 0xA9DF},
	{"kaithi", 0x11080, 0x110CF},
	{"kaktovikNumerals", 0x1D2C0, 0x1D2DF},
	{"kanaExtended", 0x1B100, 0x1B12F},
	{"kanaExtendedB", 0x1AFF0, 0x1AFFF},
	{"kanaSupplement", 0x1B000, 0x1B0FF},
	{"kanbun", 0x3190, 0x319F},
	{"kangxiRadicals", 0x2F00, 0x2FDF},
	{"kannada", 0x0C80, 0x0CFF},
	{"katakana", 0x30A0, 0x30FF},
	{"katakanaPhoneticExtensions", 0x31F0, 0x31FF},
	{"kawi", 0x11F00, 0x11F5F},
	{"kayahLi", 0xA900, 0xA92F},
	{"kharoshthi", 0x10A00, 0x10A5F},
	{"khitanSmallScript", 0x18B00, 0x18CFF},
	{"khmer", 0x1780, 0x17FF},
	{"khmerSymbols", 0x19E0, 0x19FF},
	{"khojki", 0x11200, 0x1124F},
	{"khudawadi", 0x112B0, 0x112FF},
	{"lao", 0x0E80, 0x0EFF},
	{"latinExtendedA", 0x0100, 0x017F},
	{"latinExtendedAdditional", 0x1E00, 0x1EFF},
	{"latinExtendedB", 0x0180, 0x024F},
	{"latinExtendedC", 0x2C60, 0x2C7F},
	{"latinExtendedD", 0xA720, 0xA7FF},
	{"latinExtendedE", 0xAB30, 0xAB6F},
	{"latinExtendedF", 0x10780, 0x107BF},
	{"latinExtendedG", 0x1DF00, 0x1DFFF},
	{"latinSupplement", 0x0080, 0x00FF},
	{"lepcha", 0x1C00, 0x1C4F},
	{"letterlikeSymbols", 0x2100, 0x214F},
	{"limbu", 0x1900, 0x194F},
	{"linearA", 0x10600, 0x1077F},
	{"linearBIdeograms", 0x10080, 0x100FF},
	{"linearBSyllabary", 0x10000, 0x1007F},
	{"lisu", 0xA4D0, 0xA4FF},
	{"lisuSupplement", 0x11FB0, 0x11FBF},
	{"lowSurrogates", 0xDC00, 0xDFFF},
	{"lycian", 0x10280, 0x1029F},
	{"lydian", 0x10920, 0x1093F},
	{"mahajani", 0x11150, 0x1117F},
	{"mahjongTiles", 0x1F000, 0x1F02F},
	{"makasar", 0x11EE0, 0x11EFF},
	{"malayalam", 0x0D00, 0x0D7F},
	{"mandaic", 0x0840, 0x085F},
	{"manichaean", 0x10AC0, 0x10AFF},
	{"marchen", 0x11C70, 0x11CBF},
	{"masaramGondi", 0x11D00, 0x11D5F},
	{"mathematicalAlphanumericSymbols", 0x1D400, 0x1D7FF},
	{"mathematicalOperators", 0x2200, 0x22FF},
	{"mayanNumerals", 0x1D2E0, 0x1D2FF},
	{"medefaidrin", 0x16E40, 0x16E9F},
	{"meeteiMayek", 0xABC0, 0xABFF},
	{"meeteiMayekExtensions", 0xAAE0, 0xAAFF},
	{"mendeKikakui", 0x1E800, 0x1E8DF},
	{"meroiticCursive", 0x109A0, 0x109FF},
	{"meroiticHieroglyphs", 0x10980, 0x1099F},
	{"miao", 0x16F00, 0x16F9F},
	{"miscellaneousMathematicalSymbolsA", 0x27C0, 0x27EF},
	{"miscellaneousMathematicalSymbolsB", 0x2980, 0x29FF},
	{"miscellaneousSymbols", 0x2600, 0x26FF},
	{"miscellaneousSymbolsandArrows", 0x2B00, 0x2BFF},
	{"miscellaneousSymbolsandPictographs", 0x1F300, 0x1F5FF},
	{"miscellaneousTechnical", 0x2300, 0x23FF},
	{"modi", 0x11600, 0x1165F},
	{"modifierToneLetters", 0xA700, 0xA71F},
	{"mongolian", 0x1800, 0x18AF},
	{"mongolianSupplement", 0x11660, 0x1167F},
	{"mro", 0x16A40, 0x16A6F},
	{"multani", 0x11280, 0x112AF},
	{"musicalSymbols", 0x1D100, 0x1D1FF},
	{"myanmar", 0x1000, 0x109F},
	{"myanmarExtendedA", 0xA9E0, 0xA9FF},
	{"myanmarExtendedB", 0xAA60, 0xAA7F},
	{"nKo", 0x07C0, 0x07FF},
	{"nabataean", 0x10880, 0x108AF},
	{"nagMundari", 0x1E4D0, 0x1E4FF},
	{"nandinagari", 0x119A0, 0x119FF},
	{"newTaiLue", 0x1980, 0x19DF},
	{"newa", 0x11400, 0x1147F},
	{"numberForms", 0x2150, 0x218F},
	{"nushu", 0x1B170, 0x1B2FF},
	{"nyiakengPuachueHmong", 0x1E100, 0x1E14F},
	{"ogham", 0x1680, 0x169F},
	{"olChiki", 0x1C50, 0x1C7F},
	{"oldHungarian", 0x10C80, 0x10CFF},
	{"oldItalic", 0x10300, 0x1032F},
	{"oldNorthArabian", 0x10A80, 0x10A9F},
	{"oldPermic", 0x10350, 0x1037F},
	{"oldPersian", 0x103A0, 0x103DF},
	{"oldSogdian", 0x10F00, 0x10F2F},
	{"oldSouthArabian", 0x10A60, 0x10A7F},
	{"oldTurkic", 0x10C00, 0x10C4F},
	{"oldUyghur", 0x10F70, 0x10FAF},
	{"opticalCharacterRecognition", 0x2440, 0x245F},
	{"oriya", 0x0B00, 0x0B7F},
	{"ornamentalDingbats", 0x1F650, 0x1F67F},
	{"osage", 0x104B0, 0x104FF},
	{"osmanya", 0x10480, 0x104AF},
	{"ottomanSiyaqNumbers", 0x1ED00, 0x1ED4F},
	{"pahawhHmong", 0x16B00, 0x16B8F},
	{"palmyrene", 0x10860, 0x1087F},
	{"pauCinHau", 0x11AC0, 0x11AFF},
	{"phagsa", 0xA840, 0xA87F},
	{"phaistosDisc", 0x101D0, 0x101FF},
	{"phoenician", 0x10900, 0x1091F},
	{"phoneticExtensions", 0x1D00, 0x1D7F},
	{"phoneticExtensionsSupplement", 0x1D80, 0x1DBF},
	{"playingCards", 0x1F0A0, 0x1F0FF},
	{"privateUseArea", 0xE000, 0xF8FF},
	{"psalterPahlavi", 0x10B80, 0x10BAF},
	{"rejang", 0xA930, 0xA95F},
	{"rumiNumeralSymbols", 0x10E60, 0x10E7F},
	{"runic", 0x16A0, 0x16FF},
	{"samaritan", 0x0800, 0x083F},
	{"saurashtra", 0xA880, 0xA8DF},
	{"sharada", 0x11180, 0x111DF},
	{"shavian", 0x10450, 0x1047F},
	{"shorthandFormatControls", 0x1BCA0, 0x1BCAF},
	{"siddham", 0x11580, 0x115FF},
	{"sinhala", 0x0D80, 0x0DFF},
	{"sinhalaArchaicNumbers", 0x111E0, 0x111FF},
	{"smallFormVariants", 0xFE50, 0xFE6F},
	{"smallKanaExtension", 0x1B130, 0x1B16F},
	{"sogdian", 0x10F30, 0x10F6F},
	{"soraSompeng", 0x110D0, 0x110FF},
	{"soyombo", 0x11A50, 0x11AAF},
	{"spacingModifierLetters", 0x02B0, 0x02FF},
	{"specials", 0xFFF0, 0xFFFF},
	{"sundanese", 0x1B80, 0x1BBF},
	{"sundaneseSupplement", 0x1CC0, 0x1CCF},
	{"superscriptsandSubscripts", 0x2070, 0x209F},
	{"supplementalArrowsA", 0x27F0, 0x27FF},
	{"supplementalArrowsB", 0x2900, 0x297F},
	{"supplementalArrowsC", 0x1F800, 0x1F8FF},
	{"supplementalMathematicalOperators", 0x2A00, 0x2AFF},
	{"supplementalPunctuation", 0x2E00, 0x2E7F},
	{"supplementalSymbolsandPictographs", 0x1F900, 0x1F9FF},
	{"supplementaryPrivateUseAreaA", 0xF0000, 0xFFFFF},
	{"supplementaryPrivateUseAreaB", 0x100000, 0x10FFFF},
	{"suttonSignWriting", 0x1D800, 0x1DAAF},
	{"sylotiNagri", 0xA800, 0xA82F},
	{"symbolsandPictographsExtendedA", 0x1FA70, 0x1FAFF},
	{"symbolsforLegacyComputing", 0x1FB00, 0x1FBFF},
	{"syriac", 0x0700, 0x074F},
	{"syriacSupplement", 0x0860, 0x086F},
	{"tagalog", 0x1700, 0x171F},
	{"tagbanwa", 0x1760, 0x177F},
	{"tags", 0xE0000, 0xE007F},
	{"taiLe", 0x1950, 0x197F},
	{"taiTham", 0x1A20, 0x1AAF},
	{"taiViet", 0xAA80, 0xAADF},
	{"taiXuanJingSymbols", 0x1D300, 0x1D35F},
	{"takri", 0x11680, 0x116CF},
	{"tamil", 0x0B80, 0x0BFF},
	{"tamilSupplement", 0x11FC0, 0x11FFF},
	{"tangsa", 0x16A70, 0x16ACF},
	{"tangut", 0x17000, 0x187FF},
	{"tangutComponents", 0x18800, 0x18AFF},
	{"tangutSupplement", 0x18D00, 0x18D7F},
	{"telugu", 0x0C00, 0x0C7F},
	{"thaana", 0x0780, 0x07BF},
	{"thai", 0x0E00, 0x0E7F},
	{"tibetan", 0x0F00, 0x0FFF},
	{"tifinagh", 0x2D30, 0x2D7F},
	{"tirhuta", 0x11480, 0x114DF},
	{"toto", 0x1E290, 0x1E2BF},
	{"transportandMapSymbols", 0x1F680, 0x1F6FF},
	{"ugaritic", 0x10380, 0x1039F},
	{"unifiedCanadianAboriginalSyllabics", 0x1400, 0x167F},
	{"unifiedCanadianAboriginalSyllabicsExtended", 0x18B0, 0x18FF},
	{"unifiedCanadianAboriginalSyllabicsExtendedA", 0x11AB0, 0x11ABF},
	{"vai", 0xA500, 0xA63F},
	{"variationSelectors", 0xFE00, 0xFE0F},
	{"variationSelectorsSupplement", 0xE0100, 0xE01EF},
	{"vedicExtensions", 0x1CD0, 0x1CFF},
	{"verticalForms", 0xFE10, 0xFE1F},
	{"vithkuqi", 0x10570, 0x105BF},
	{"wancho", 0x1E2C0, 0x1E2FF},
	{"warangCiti", 0x118A0, 0x118FF},
	{"yezidi", 0x10E80, 0x10EBF},
	{"yiRadicals", 0xA490, 0xA4CF},
	{"yiSyllables", 0xA000, 0xA48F},
	{"yijingHexagramSymbols", 0x4DC0, 0x4DFF},
	{"zanabazarSquare", 0x11A00, 0x11A4F},
	{"znamennyMusicalNotation", 0x1CF00, 0x1CFCF},
}
