package sokoban

// builtinLevels is the default pack compiled into the binary.
var builtinLevels = []struct {
	id, name string
	rows     []string
}{
	{"classic-01", "First Push", []string{
		"#####",
		"#@$.#",
		"#####",
	}},
	{"classic-02", "Hallway", []string{
		"#######",
		"#.$@$.#",
		"#######",
	}},
	{"classic-03", "Corner", []string{
		"####",
		"# .#",
		"#  ###",
		"#*@  #",
		"#  $ #",
		"#  ###",
		"####",
	}},
	{"classic-04", "Two Rooms", []string{
		"######",
		"#    #",
		"# #@ #",
		"# $* #",
		"# .* #",
		"#    #",
		"######",
	}},
	{"classic-05", "Warehouse", []string{
		"  ####",
		"###  ####",
		"#     $ #",
		"# #  #$ #",
		"# . .#@ #",
		"#########",
	}},
	{"classic-06", "Conveyor", []string{
		"########",
		"#      #",
		"# .**$@#",
		"#      #",
		"#####  #",
		"    ####",
	}},
	{"classic-07", "Crossroads", []string{
		" #######",
		" #     #",
		" # .$. #",
		"## $@$ #",
		"#  .$. #",
		"#      #",
		"########",
	}},
}

// BuiltinPack returns the default level pack.
func BuiltinPack() *Pack {
	levels := make([]*Level, len(builtinLevels))
	for i, b := range builtinLevels {
		levels[i] = NewLevel(b.id, b.name, b.rows)
	}
	return NewPack("classic", "Classic", levels...)
}
