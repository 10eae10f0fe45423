package domain

// StoreAll desativa o filtro de loja
const StoreAll = "All"

// Store mapeia uma loja lógica para os identificadores físicos de cada canal.
// O PDV usa um id numérico próprio; a plataforma online usa uma chave textual.
// Uma loja lógica sempre mapeia para o mesmo par de identificadores.
type Store struct {
	Name       string
	POSStoreID int64
	OnlineKey  string
}

var stores = []Store{
	{Name: "Hawthorn", POSStoreID: 1, OnlineKey: "hawthorn"},
	{Name: "Richmond", POSStoreID: 2, OnlineKey: "richmond"},
}

// Stores retorna todas as lojas conhecidas
func Stores() []Store {
	out := make([]Store, len(stores))
	copy(out, stores)
	return out
}

// LookupStore resolve uma loja lógica pelo nome. Nome vazio, "All" ou uma loja
// não mapeada retornam false; o chamador trata como "sem filtro de loja".
func LookupStore(name string) (*Store, bool) {
	if name == "" || name == StoreAll {
		return nil, false
	}

	for i := range stores {
		if stores[i].Name == name {
			return &stores[i], true
		}
	}

	return nil, false
}

// StoreNameForPOSID resolve o nome da loja a partir do id físico do PDV
func StoreNameForPOSID(id int64) string {
	for i := range stores {
		if stores[i].POSStoreID == id {
			return stores[i].Name
		}
	}
	return ""
}
