package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	&SysOpr{},
	&SysLoginLog{},
	&SysOpLog{},
	// Catalog
	&Product{},
}
