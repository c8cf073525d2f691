package schema

import "time"

// Property represents the properties table - one row per fractionally owned property
type Property struct {
	// Address is the derived record address (base58)
	Address string `gorm:"column:address;primaryKey;type:text"`
	// OwnerAddress is the identity that created the property
	OwnerAddress string `gorm:"column:owner_address;not null;type:text;uniqueIndex"`
	// TotalShares is the number of shares ever issued (u64 stored as numeric)
	TotalShares string `gorm:"column:total_shares;not null;type:numeric(20,0)"`
	// AvailableShares is the number of unsold shares (u64 stored as numeric)
	AvailableShares string `gorm:"column:available_shares;not null;type:numeric(20,0)"`
	// RentPool is the rent accumulated since the last distribution (u64 stored as numeric)
	RentPool string `gorm:"column:rent_pool;not null;type:numeric(20,0)"`
	// ShareUnitID references the share unit minted on purchase
	ShareUnitID string `gorm:"column:share_unit_id;not null;type:text;uniqueIndex"`
	// Bump is the derivation discriminator of Address
	Bump int16 `gorm:"column:bump;not null;type:smallint"`
	// IsListed indicates whether paid purchases are accepted
	IsListed bool `gorm:"column:is_listed;not null;default:false"`
	// SharePrice is the base currency price per share (u64 stored as numeric)
	SharePrice string `gorm:"column:share_price;not null;type:numeric(20,0)"`
	// CreatedAt is the creation time, second precision
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamptz"`
	// UpdatedAt is the timestamp of the last write
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Property model
func (Property) TableName() string {
	return "properties"
}

// ShareUnit represents the share_units table - the fungible unit of each property's shares
type ShareUnit struct {
	// ID is the derived share unit address (base58)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// PropertyAddress references the property whose shares this unit represents
	PropertyAddress string `gorm:"column:property_address;not null;type:text;uniqueIndex"`
	// MintAuthority is the only address allowed to mint this unit
	MintAuthority string `gorm:"column:mint_authority;not null;type:text"`
	// Supply is the number of units minted so far (u64 stored as numeric)
	Supply string `gorm:"column:supply;not null;type:numeric(20,0)"`
	// CreatedAt is the timestamp when this unit was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last mint
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ShareUnit model
func (ShareUnit) TableName() string {
	return "share_units"
}
