package initializer

// fileTypeSeed 预置文件类型
type fileTypeSeed struct {
	id      int64
	name    string
	deleted bool
}

// fileSeed 预置文件: 标识, 文件名, 类型, 实体, 是否已删除
type fileSeed struct {
	id       int64
	name     string
	typeID   int64
	entityID int64
	deleted  bool
}

var fileTypeSeeds = []fileTypeSeed{
	{1, "Расы", false},
	{2, "Нации", false},
	{3, "Удалённый", true},
	{4, "Страны", false},
	{5, "Фракции", false},
	{6, "Общее", false},
	{7, "Новости", false},
}

var fileSeeds = []fileSeed{
	{1, "race_0.png", 1, 1, false},
	{2, "race_1.png", 1, 1, false},
	{3, "incorrect_content_type_0.png1", 1, 1, false},
	{4, "deleted_type_0.png", 3, 0, false},
	{5, "deleted_0.png", 3, 0, true},
	{6, "ichthyid.png", 1, 1, false},
	{7, "mraat.png", 1, 4, false},
	{8, "human.png", 1, 5, false},
	{9, "vampire.png", 1, 6, false},
	{10, "elf.png", 1, 7, false},
	{11, "metamorf.png", 1, 8, false},
	{12, "orc.png", 1, 9, false},
	{13, "dwarf.png", 1, 10, false},
	{14, "troll.png", 1, 11, false},
	{15, "goblin.png", 1, 12, false},
	{16, "ogre.png", 1, 13, false},
	{17, "alv.png", 1, 14, false},
	{18, "antorpozavr.png", 1, 15, false},
	{19, "elvin.jpg", 1, 16, false},
	{20, "danu.png", 1, 17, false},
	{21, "true_ichthyid.png", 2, 1, false},
	{22, "rejected_ichthyid.png", 2, 2, false},
	{23, "dryevniiy.png", 2, 3, false},
	{24, "nag.png", 2, 4, false},
	{25, "dikiiy_mraat.png", 2, 5, false},
	{26, "tsivilizovannyiy_mraat.png", 2, 6, false},
	{27, "listsiyets.png", 2, 7, false},
	{28, "rifut.png", 2, 8, false},
	{29, "lastat.png", 2, 9, false},
	{30, "dyestinyets.png", 2, 10, false},
	{31, "ilmariyets.png", 2, 11, false},
	{32, "asud.png", 2, 12, false},
	{33, "val'tiryets.png", 2, 13, false},
	{34, "saorsin.png", 2, 14, false},
	{35, "tyeoranyets.png", 2, 15, false},
	{36, "ankostyets.png", 2, 16, false},
	{37, "tavalinyets.png", 2, 17, false},
	{38, "iglyessiyets.png", 2, 18, false},
	{39, "plyekiyets.png", 2, 19, false},
	{40, "siyervin.png", 2, 20, false},
	{41, "viyegiyets.png", 2, 21, false},
	{42, "zapadnyiy_vampir.png", 2, 22, false},
	{43, "vostochnyiy_vampir.png", 2, 23, false},
	{44, "vysshiiy_el'f.png", 2, 24, false},
	{45, "nochnoiy_el'f.png", 2, 25, false},
	{46, "krovavyiy_el'f.png", 2, 26, false},
	{47, "lyesnoiy_el'f.png", 2, 27, false},
	{48, "gornyiy_el'f.png", 2, 28, false},
	{49, "ryechnoiy_el'f.png", 2, 29, false},
	{50, "solnyechnyiy_el'f.png", 2, 30, false},
	{51, "morskoiy_el'f.png", 2, 31, false},
	{52, "volchiiy_myetamorf.png", 2, 32, false},
	{53, "myedvyezhiiy_myetamorf.png", 2, 33, false},
	{54, "koshachiiy_myetamorf.png", 2, 34, false},
	{55, "syeryiy_ork.png", 2, 35, false},
	{56, "chyornyiy_ork.png", 2, 36, false},
	{57, "zyelyonyiy_ork.png", 2, 37, false},
	{58, "byelyiy_ork.png", 2, 38, false},
	{59, "yuzhnyiy_ork.png", 2, 39, false},
	{60, "bakkyer.png", 2, 40, false},
	{61, "nordyeryets.png", 2, 41, false},
	{62, "vyervirungyets.png", 2, 42, false},
	{63, "shmid.png", 2, 43, false},
	{64, "krigyer.png", 2, 44, false},
	{65, "kufman.png", 2, 45, false},
	{66, "gornyiy_troll'.png", 2, 46, false},
	{67, "snyezhnyiy_troll'.png", 2, 47, false},
	{68, "bolotnyiy_troll'.png", 2, 48, false},
	{69, "lyesnoiy_troll'.png", 2, 49, false},
	{70, "udstiryets.png", 2, 50, false},
	{71, "fiskiryets.png", 2, 51, false},
	{72, "mont.png", 2, 52, false},
	{73, "ogr.png", 2, 53, false},
	{74, "al'v.png", 2, 54, false},
	{75, "antropozavr.png", 2, 55, false},
	{76, "elvin.png", 2, 56, false},
	{77, "danu_nation.png", 2, 57, false},
	{78, "alvraat_empire.png", 4, 1, false},
	{79, "principality_saorsa.png", 4, 2, false},
	{80, "kingdom_bergen.png", 4, 3, false},
	{81, "fesgar_principality.png", 4, 4, false},
	{82, "sverdensky_kaganate.png", 4, 5, false},
	{83, "khanate_tavalin.png", 4, 6, false},
	{84, "principality_sargib.png", 4, 7, false},
	{85, "raj_bandu.png", 4, 8, false},
	{86, "kingdom_norder.png", 4, 9, false},
	{87, "alter_principality.png", 4, 10, false},
	{88, "orliadar_confederation.png", 4, 11, false},
	{89, "kingdom_udstir.png", 4, 12, false},
	{90, "kingdom_vervirung.png", 4, 13, false},
	{91, "destin_order.png", 4, 14, false},
	{92, "free_city_liyset.png", 4, 15, false},
	{93, "liscian_empire.png", 4, 16, false},
	{94, "kingdom_valtir.png", 4, 17, false},
	{95, "vassal_principality_gratis.png", 4, 18, false},
	{96, "principality_rekta.png", 4, 19, false},
	{97, "volar.png", 4, 20, false},
	{98, "union_il_ladro.png", 4, 21, false},
	{99, "merger_union.png", 4, 22, false},
	{100, "government.png", 5, 2, false},
	{101, "aristocracy.png", 5, 3, false},
	{102, "clergy.png", 5, 4, false},
	{103, "magicians.png", 5, 5, false},
	{104, "military.png", 5, 6, false},
	{105, "merchants.png", 5, 7, false},
	{106, "criminality.png", 5, 8, false},
	{107, "intelligentsia.png", 5, 9, false},
	{108, "factionless.png", 5, 10, false},
	{109, "logo.png", 6, 1, false},
	{110, "about_project.png", 6, 2, false},
	{111, "dark_icon.svg", 6, 3, false},
	{112, "news_start.png", 7, 2, false},
	{113, "news_start_authorization.png", 7, 3, false},
	{114, "news_start_lending.png", 7, 4, false},
}
