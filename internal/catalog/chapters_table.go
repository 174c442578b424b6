package catalog

// chapters is the full reference table, ordered by chapter number.
var chapters = []Chapter{
	{Number: 1, Name: "الفاتحة", LatinName: "Al-Fatihah", VerseCount: 7, Place: PlaceMakkah},
	{Number: 2, Name: "البقرة", LatinName: "Al-Baqarah", VerseCount: 286, Place: PlaceMadinah},
	{Number: 3, Name: "اٰل عمران", LatinName: "Ali 'Imran", VerseCount: 200, Place: PlaceMadinah},
	{Number: 4, Name: "النساۤء", LatinName: "An-Nisa'", VerseCount: 176, Place: PlaceMadinah},
	{Number: 5, Name: "الماۤئدة", LatinName: "Al-Ma'idah", VerseCount: 120, Place: PlaceMadinah},
	{Number: 6, Name: "الانعام", LatinName: "Al-An'am", VerseCount: 165, Place: PlaceMakkah},
	{Number: 7, Name: "الاعراف", LatinName: "Al-A'raf", VerseCount: 206, Place: PlaceMakkah},
	{Number: 8, Name: "الانفال", LatinName: "Al-Anfal", VerseCount: 75, Place: PlaceMadinah},
	{Number: 9, Name: "التوبة", LatinName: "At-Taubah", VerseCount: 129, Place: PlaceMadinah},
	{Number: 10, Name: "يونس", LatinName: "Yunus", VerseCount: 109, Place: PlaceMakkah},
	{Number: 11, Name: "هود", LatinName: "Hud", VerseCount: 123, Place: PlaceMakkah},
	{Number: 12, Name: "يوسف", LatinName: "Yusuf", VerseCount: 111, Place: PlaceMakkah},
	{Number: 13, Name: "الرعد", LatinName: "Ar-Ra'd", VerseCount: 43, Place: PlaceMadinah},
	{Number: 14, Name: "ابرٰهيم", LatinName: "Ibrahim", VerseCount: 52, Place: PlaceMakkah},
	{Number: 15, Name: "الحجر", LatinName: "Al-Hijr", VerseCount: 99, Place: PlaceMakkah},
	{Number: 16, Name: "النحل", LatinName: "An-Nahl", VerseCount: 128, Place: PlaceMakkah},
	{Number: 17, Name: "الاسراۤء", LatinName: "Al-Isra'", VerseCount: 111, Place: PlaceMakkah},
	{Number: 18, Name: "الكهف", LatinName: "Al-Kahf", VerseCount: 110, Place: PlaceMakkah},
	{Number: 19, Name: "مريم", LatinName: "Maryam", VerseCount: 98, Place: PlaceMakkah},
	{Number: 20, Name: "طٰهٰ", LatinName: "Taha", VerseCount: 135, Place: PlaceMakkah},
	{Number: 21, Name: "الانبياۤء", LatinName: "Al-Anbiya'", VerseCount: 112, Place: PlaceMakkah},
	{Number: 22, Name: "الحج", LatinName: "Al-Hajj", VerseCount: 78, Place: PlaceMadinah},
	{Number: 23, Name: "المؤمنون", LatinName: "Al-Mu'minun", VerseCount: 118, Place: PlaceMakkah},
	{Number: 24, Name: "النور", LatinName: "An-Nur", VerseCount: 64, Place: PlaceMadinah},
	{Number: 25, Name: "الفرقان", LatinName: "Al-Furqan", VerseCount: 77, Place: PlaceMakkah},
	{Number: 26, Name: "الشعراۤء", LatinName: "Asy-Syu'ara'", VerseCount: 227, Place: PlaceMakkah},
	{Number: 27, Name: "النمل", LatinName: "An-Naml", VerseCount: 93, Place: PlaceMakkah},
	{Number: 28, Name: "القصص", LatinName: "Al-Qasas", VerseCount: 88, Place: PlaceMakkah},
	{Number: 29, Name: "العنكبوت", LatinName: "Al-'Ankabut", VerseCount: 69, Place: PlaceMakkah},
	{Number: 30, Name: "الروم", LatinName: "Ar-Rum", VerseCount: 60, Place: PlaceMakkah},
	{Number: 31, Name: "لقمٰن", LatinName: "Luqman", VerseCount: 34, Place: PlaceMakkah},
	{Number: 32, Name: "السجدة", LatinName: "As-Sajdah", VerseCount: 30, Place: PlaceMakkah},
	{Number: 33, Name: "الاحزاب", LatinName: "Al-Ahzab", VerseCount: 73, Place: PlaceMadinah},
	{Number: 34, Name: "سبأ", LatinName: "Saba'", VerseCount: 54, Place: PlaceMakkah},
	{Number: 35, Name: "فاطر", LatinName: "Fatir", VerseCount: 45, Place: PlaceMakkah},
	{Number: 36, Name: "يٰسۤ", LatinName: "Yasin", VerseCount: 83, Place: PlaceMakkah},
	{Number: 37, Name: "الصّٰۤفّٰت", LatinName: "As-Saffat", VerseCount: 182, Place: PlaceMakkah},
	{Number: 38, Name: "صۤ", LatinName: "Sad", VerseCount: 88, Place: PlaceMakkah},
	{Number: 39, Name: "الزمر", LatinName: "Az-Zumar", VerseCount: 75, Place: PlaceMakkah},
	{Number: 40, Name: "غافر", LatinName: "Gafir", VerseCount: 85, Place: PlaceMakkah},
	{Number: 41, Name: "فصّلت", LatinName: "Fussilat", VerseCount: 54, Place: PlaceMakkah},
	{Number: 42, Name: "الشورى", LatinName: "Asy-Syura", VerseCount: 53, Place: PlaceMakkah},
	{Number: 43, Name: "الزخرف", LatinName: "Az-Zukhruf", VerseCount: 89, Place: PlaceMakkah},
	{Number: 44, Name: "الدخان", LatinName: "Ad-Dukhan", VerseCount: 59, Place: PlaceMakkah},
	{Number: 45, Name: "الجاثية", LatinName: "Al-Jasiyah", VerseCount: 37, Place: PlaceMakkah},
	{Number: 46, Name: "الاحقاف", LatinName: "Al-Ahqaf", VerseCount: 35, Place: PlaceMakkah},
	{Number: 47, Name: "محمد", LatinName: "Muhammad", VerseCount: 38, Place: PlaceMadinah},
	{Number: 48, Name: "الفتح", LatinName: "Al-Fath", VerseCount: 29, Place: PlaceMadinah},
	{Number: 49, Name: "الحجرٰت", LatinName: "Al-Hujurat", VerseCount: 18, Place: PlaceMadinah},
	{Number: 50, Name: "قۤ", LatinName: "Qaf", VerseCount: 45, Place: PlaceMakkah},
	{Number: 51, Name: "الذّٰريٰت", LatinName: "Az-Zariyat", VerseCount: 60, Place: PlaceMakkah},
	{Number: 52, Name: "الطور", LatinName: "At-Tur", VerseCount: 49, Place: PlaceMakkah},
	{Number: 53, Name: "النجم", LatinName: "An-Najm", VerseCount: 62, Place: PlaceMakkah},
	{Number: 54, Name: "القمر", LatinName: "Al-Qamar", VerseCount: 55, Place: PlaceMakkah},
	{Number: 55, Name: "الرحمن", LatinName: "Ar-Rahman", VerseCount: 78, Place: PlaceMadinah},
	{Number: 56, Name: "الواقعة", LatinName: "Al-Waqi'ah", VerseCount: 96, Place: PlaceMakkah},
	{Number: 57, Name: "الحديد", LatinName: "Al-Hadid", VerseCount: 29, Place: PlaceMadinah},
	{Number: 58, Name: "المجادلة", LatinName: "Al-Mujadilah", VerseCount: 22, Place: PlaceMadinah},
	{Number: 59, Name: "الحشر", LatinName: "Al-Hasyr", VerseCount: 24, Place: PlaceMadinah},
	{Number: 60, Name: "الممتحنة", LatinName: "Al-Mumtahanah", VerseCount: 13, Place: PlaceMadinah},
	{Number: 61, Name: "الصّف", LatinName: "As-Saff", VerseCount: 14, Place: PlaceMadinah},
	{Number: 62, Name: "الجمعة", LatinName: "Al-Jumu'ah", VerseCount: 11, Place: PlaceMadinah},
	{Number: 63, Name: "المنٰفقون", LatinName: "Al-Munafiqun", VerseCount: 11, Place: PlaceMadinah},
	{Number: 64, Name: "التغابن", LatinName: "At-Tagabun", VerseCount: 18, Place: PlaceMadinah},
	{Number: 65, Name: "الطلاق", LatinName: "At-Talaq", VerseCount: 12, Place: PlaceMadinah},
	{Number: 66, Name: "التحريم", LatinName: "At-Tahrim", VerseCount: 12, Place: PlaceMadinah},
	{Number: 67, Name: "الملك", LatinName: "Al-Mulk", VerseCount: 30, Place: PlaceMakkah},
	{Number: 68, Name: "القلم", LatinName: "Al-Qalam", VerseCount: 52, Place: PlaceMakkah},
	{Number: 69, Name: "الحاۤقّة", LatinName: "Al-Haqqah", VerseCount: 52, Place: PlaceMakkah},
	{Number: 70, Name: "المعارج", LatinName: "Al-Ma'arij", VerseCount: 44, Place: PlaceMakkah},
	{Number: 71, Name: "نوح", LatinName: "Nuh", VerseCount: 28, Place: PlaceMakkah},
	{Number: 72, Name: "الجن", LatinName: "Al-Jinn", VerseCount: 28, Place: PlaceMakkah},
	{Number: 73, Name: "المزّمّل", LatinName: "Al-Muzzammil", VerseCount: 20, Place: PlaceMakkah},
	{Number: 74, Name: "المدّثّر", LatinName: "Al-Muddassir", VerseCount: 56, Place: PlaceMakkah},
	{Number: 75, Name: "القيٰمة", LatinName: "Al-Qiyamah", VerseCount: 40, Place: PlaceMakkah},
	{Number: 76, Name: "الانسان", LatinName: "Al-Insan", VerseCount: 31, Place: PlaceMadinah},
	{Number: 77, Name: "المرسلٰت", LatinName: "Al-Mursalat", VerseCount: 50, Place: PlaceMakkah},
	{Number: 78, Name: "النبأ", LatinName: "An-Naba'", VerseCount: 40, Place: PlaceMakkah},
	{Number: 79, Name: "النّٰزعٰت", LatinName: "An-Nazi'at", VerseCount: 46, Place: PlaceMakkah},
	{Number: 80, Name: "عبس", LatinName: "'Abasa", VerseCount: 42, Place: PlaceMakkah},
	{Number: 81, Name: "التكوير", LatinName: "At-Takwir", VerseCount: 29, Place: PlaceMakkah},
	{Number: 82, Name: "الانفطار", LatinName: "Al-Infitar", VerseCount: 19, Place: PlaceMakkah},
	{Number: 83, Name: "المطفّفين", LatinName: "Al-Mutaffifin", VerseCount: 36, Place: PlaceMakkah},
	{Number: 84, Name: "الانشقاق", LatinName: "Al-Insyiqaq", VerseCount: 25, Place: PlaceMakkah},
	{Number: 85, Name: "البروج", LatinName: "Al-Buruj", VerseCount: 22, Place: PlaceMakkah},
	{Number: 86, Name: "الطارق", LatinName: "At-Tariq", VerseCount: 17, Place: PlaceMakkah},
	{Number: 87, Name: "الاعلى", LatinName: "Al-A'la", VerseCount: 19, Place: PlaceMakkah},
	{Number: 88, Name: "الغاشية", LatinName: "Al-Gasyiyah", VerseCount: 26, Place: PlaceMakkah},
	{Number: 89, Name: "الفجر", LatinName: "Al-Fajr", VerseCount: 30, Place: PlaceMakkah},
	{Number: 90, Name: "البلد", LatinName: "Al-Balad", VerseCount: 20, Place: PlaceMakkah},
	{Number: 91, Name: "الشمس", LatinName: "Asy-Syams", VerseCount: 15, Place: PlaceMakkah},
	{Number: 92, Name: "الّيل", LatinName: "Al-Lail", VerseCount: 21, Place: PlaceMakkah},
	{Number: 93, Name: "الضحى", LatinName: "Ad-Duha", VerseCount: 11, Place: PlaceMakkah},
	{Number: 94, Name: "الشرح", LatinName: "Asy-Syarh", VerseCount: 8, Place: PlaceMakkah},
	{Number: 95, Name: "التين", LatinName: "At-Tin", VerseCount: 8, Place: PlaceMakkah},
	{Number: 96, Name: "العلق", LatinName: "Al-'Alaq", VerseCount: 19, Place: PlaceMakkah},
	{Number: 97, Name: "القدر", LatinName: "Al-Qadr", VerseCount: 5, Place: PlaceMakkah},
	{Number: 98, Name: "البيّنة", LatinName: "Al-Bayyinah", VerseCount: 8, Place: PlaceMadinah},
	{Number: 99, Name: "الزلزلة", LatinName: "Az-Zalzalah", VerseCount: 8, Place: PlaceMadinah},
	{Number: 100, Name: "العٰديٰت", LatinName: "Al-'Adiyat", VerseCount: 11, Place: PlaceMakkah},
	{Number: 101, Name: "القارعة", LatinName: "Al-Qari'ah", VerseCount: 11, Place: PlaceMakkah},
	{Number: 102, Name: "التكاثر", LatinName: "At-Takasur", VerseCount: 8, Place: PlaceMakkah},
	{Number: 103, Name: "العصر", LatinName: "Al-'Asr", VerseCount: 3, Place: PlaceMakkah},
	{Number: 104, Name: "الهمزة", LatinName: "Al-Humazah", VerseCount: 9, Place: PlaceMakkah},
	{Number: 105, Name: "الفيل", LatinName: "Al-Fil", VerseCount: 5, Place: PlaceMakkah},
	{Number: 106, Name: "قريش", LatinName: "Quraisy", VerseCount: 4, Place: PlaceMakkah},
	{Number: 107, Name: "الماعون", LatinName: "Al-Ma'un", VerseCount: 7, Place: PlaceMakkah},
	{Number: 108, Name: "الكوثر", LatinName: "Al-Kausar", VerseCount: 3, Place: PlaceMakkah},
	{Number: 109, Name: "الكٰفرون", LatinName: "Al-Kafirun", VerseCount: 6, Place: PlaceMakkah},
	{Number: 110, Name: "النصر", LatinName: "An-Nasr", VerseCount: 3, Place: PlaceMadinah},
	{Number: 111, Name: "اللهب", LatinName: "Al-Lahab", VerseCount: 5, Place: PlaceMakkah},
	{Number: 112, Name: "الاخلاص", LatinName: "Al-Ikhlas", VerseCount: 4, Place: PlaceMakkah},
	{Number: 113, Name: "الفلق", LatinName: "Al-Falaq", VerseCount: 5, Place: PlaceMakkah},
	{Number: 114, Name: "الناس", LatinName: "An-Nas", VerseCount: 6, Place: PlaceMakkah},
}
