package data

// WarehouseSeedProduct is used once, to populate an empty warehouse
// collection on first run.
type WarehouseSeedProduct struct {
	Name     string
	Category string
	Unit     string
}

// Warehouse categories follow the kitchen layout, not the menu.
var WarehouseSeedProducts = []WarehouseSeedProduct{
	{Name: "Bułki", Category: "inne", Unit: "szt"},
	{Name: "Bułki UFO", Category: "inne", Unit: "szt"},
	{Name: "Wołowina Hereford", Category: "mięso", Unit: "kg"},
	{Name: "Kurczak", Category: "mięso", Unit: "kg"},
	{Name: "Boczek", Category: "mięso", Unit: "kg"},
	{Name: "Kiełbasa nduja", Category: "mięso", Unit: "kg"},
	{Name: "Kotlety wegańskie", Category: "inne", Unit: "szt"},
	{Name: "Ser cheddar", Category: "dodatki", Unit: "kg"},
	{Name: "Ser gorgonzola", Category: "dodatki", Unit: "kg"},
	{Name: "Ser camembert", Category: "dodatki", Unit: "kg"},
	{Name: "Sałata", Category: "warzywa", Unit: "szt"},
	{Name: "Pomidory", Category: "warzywa", Unit: "kg"},
	{Name: "Ogórki", Category: "warzywa", Unit: "kg"},
	{Name: "Cebula", Category: "warzywa", Unit: "kg"},
	{Name: "Cebula prażona", Category: "dodatki", Unit: "kg"},
	{Name: "Papryczki jalapeno", Category: "warzywa", Unit: "kg"},
	{Name: "Frytki", Category: "dodatki", Unit: "kg"},
	{Name: "Bataty", Category: "dodatki", Unit: "kg"},
	{Name: "Krążki cebulowe", Category: "dodatki", Unit: "kg"},
	{Name: "Nachosy", Category: "dodatki", Unit: "op"},
	{Name: "Sos firmowy", Category: "sosy", Unit: "l"},
	{Name: "Sos biały", Category: "sosy", Unit: "l"},
	{Name: "Sos bbq", Category: "sosy", Unit: "l"},
	{Name: "Sos Jack Daniels", Category: "sosy", Unit: "l"},
	{Name: "Pepsi 0.5l", Category: "napoje", Unit: "szt"},
	{Name: "Pepsi 1l", Category: "napoje", Unit: "szt"},
	{Name: "Mirinda 0.5l", Category: "napoje", Unit: "szt"},
	{Name: "Mirinda 1l", Category: "napoje", Unit: "szt"},
	{Name: "Seven Up 0.5l", Category: "napoje", Unit: "szt"},
	{Name: "Lipton 0.5l", Category: "napoje", Unit: "szt"},
	{Name: "Pierrot 330ml", Category: "napoje", Unit: "szt"},
	{Name: "Opakowania na wynos", Category: "inne", Unit: "szt"},
	{Name: "Papier pakowy", Category: "inne", Unit: "szt"},
}
