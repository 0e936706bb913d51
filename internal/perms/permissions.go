// Package perms defines the permission enumeration used for role-based
// access control (RBAC). Permission values are stable integers grouped in
// blocks of ~100 per resource family and are shared with the database
// seed data; they must never be renumbered.
package perms

// Permission is an integer-coded permission value.
type Permission int

const (
	// CreateAPIKey allows creating API keys.
	CreateAPIKey Permission = 1
	// ReadAPIKey allows viewing a single API key.
	ReadAPIKey Permission = 2
	// ModifyAPIKey allows renaming an API key.
	ModifyAPIKey Permission = 3
	// DeleteAPIKey allows deleting an API key.
	DeleteAPIKey Permission = 4
	// ListAPIKeys allows listing all API keys.
	ListAPIKeys Permission = 5

	// CreateBadgeRule allows creating badge rules.
	CreateBadgeRule Permission = 51
	// ReadBadgeRule allows viewing a single badge rule.
	ReadBadgeRule Permission = 52
	// ModifyBadgeRule allows editing badge rules and their levels.
	ModifyBadgeRule Permission = 53
	// DeleteBadgeRule allows deleting badge rules.
	DeleteBadgeRule Permission = 54
	// ListBadgeRules allows listing all badge rules.
	ListBadgeRules Permission = 55
	// ListBadgeImages allows listing the available badge image assets.
	ListBadgeImages Permission = 56
	// ListOwnBadges allows a user to view the badges they have earned.
	ListOwnBadges Permission = 57

	// CreateEquipmentAuthorization allows granting an equipment-type authorization.
	CreateEquipmentAuthorization Permission = 101
	// ReadEquipmentAuthorization allows viewing an equipment-type authorization.
	ReadEquipmentAuthorization Permission = 102
	// DeleteEquipmentAuthorization allows revoking an equipment-type authorization.
	DeleteEquipmentAuthorization Permission = 104
	// ListEquipmentAuthorizations allows listing all equipment-type authorizations.
	ListEquipmentAuthorizations Permission = 105
	// ListOwnEquipmentAuthorizations allows a user to list their own authorizations.
	ListOwnEquipmentAuthorizations Permission = 106

	// ListCardTypes allows listing the card type enumeration.
	ListCardTypes Permission = 205

	// CreateCard allows registering new cards.
	CreateCard Permission = 301
	// ReadCard allows viewing a single card.
	ReadCard Permission = 302
	// ModifyCard allows changing a card's type or payload.
	ModifyCard Permission = 303
	// ListCards allows listing all cards.
	ListCards Permission = 305
	// ListOwnCards allows a user to list the cards bound to their account.
	ListOwnCards Permission = 306

	// ReadChargePolicy allows viewing a single charge policy.
	ReadChargePolicy Permission = 402
	// ListChargePolicies allows listing the charge policy enumeration.
	ListChargePolicies Permission = 405

	// CreateCharge allows creating charges.
	CreateCharge Permission = 501
	// ReadCharge allows viewing a single charge.
	ReadCharge Permission = 502
	// ModifyCharge allows adjusting a charge.
	ModifyCharge Permission = 503
	// ListCharges allows listing all charges.
	ListCharges Permission = 505
	// ListOwnCharges allows a user to list their own charges.
	ListOwnCharges Permission = 506

	// CreateEquipmentType allows creating equipment types.
	CreateEquipmentType Permission = 601
	// ReadEquipmentType allows viewing a single equipment type.
	ReadEquipmentType Permission = 602
	// ModifyEquipmentType allows editing equipment types.
	ModifyEquipmentType Permission = 603
	// DeleteEquipmentType allows deleting equipment types.
	DeleteEquipmentType Permission = 604
	// ListEquipmentTypes allows listing all equipment types.
	ListEquipmentTypes Permission = 605

	// CreateEquipment allows registering equipment, including device self-registration.
	CreateEquipment Permission = 701
	// ReadEquipment allows viewing a single piece of equipment.
	ReadEquipment Permission = 702
	// ModifyEquipment allows editing equipment.
	ModifyEquipment Permission = 703
	// DeleteEquipment allows deleting equipment.
	DeleteEquipment Permission = 704
	// ListEquipment allows listing all equipment.
	ListEquipment Permission = 705

	// CreateLocation allows creating locations.
	CreateLocation Permission = 801
	// ReadLocation allows viewing a single location.
	ReadLocation Permission = 802
	// ModifyLocation allows editing locations.
	ModifyLocation Permission = 803
	// DeleteLocation allows deleting locations.
	DeleteLocation Permission = 804
	// ListLocations allows listing all locations.
	ListLocations Permission = 805

	// ReadLog allows viewing a single logged event.
	ReadLog Permission = 902
	// ListLogs allows searching the event log.
	ListLogs Permission = 905

	// CreatePayment allows recording payments.
	CreatePayment Permission = 1001
	// ReadPayment allows viewing a single payment.
	ReadPayment Permission = 1002
	// ModifyPayment allows adjusting a payment.
	ModifyPayment Permission = 1003
	// DeletePayment allows deleting a payment.
	DeletePayment Permission = 1004
	// ListPayments allows listing all payments.
	ListPayments Permission = 1005
	// ListOwnPayments allows a user to list their own payments.
	ListOwnPayments Permission = 1006

	// CreateRole allows creating roles.
	CreateRole Permission = 1101
	// ReadRole allows viewing a single role.
	ReadRole Permission = 1102
	// ModifyRole allows editing a role and its permission set.
	ModifyRole Permission = 1103
	// DeleteRole allows deleting non-system roles.
	DeleteRole Permission = 1104
	// ListRoles allows listing all roles.
	ListRoles Permission = 1105

	// CreateUser allows creating user accounts.
	CreateUser Permission = 1201
	// ReadUser allows viewing any user account.
	ReadUser Permission = 1202
	// ModifyUser allows editing user accounts.
	ModifyUser Permission = 1203
	// DeleteUser allows deactivating user accounts.
	DeleteUser Permission = 1204
	// ListUsers allows listing all user accounts.
	ListUsers Permission = 1205
	// ReadOwnUser allows a user to view their own account.
	ReadOwnUser Permission = 1206
)

// names maps every recognized permission to its display name.
var names = map[Permission]string{
	CreateAPIKey: "CREATE_API_KEY",
	ReadAPIKey:   "READ_API_KEY",
	ModifyAPIKey: "MODIFY_API_KEY",
	DeleteAPIKey: "DELETE_API_KEY",
	ListAPIKeys:  "LIST_API_KEYS",

	CreateBadgeRule: "CREATE_BADGE_RULE",
	ReadBadgeRule:   "READ_BADGE_RULE",
	ModifyBadgeRule: "MODIFY_BADGE_RULE",
	DeleteBadgeRule: "DELETE_BADGE_RULE",
	ListBadgeRules:  "LIST_BADGE_RULES",
	ListBadgeImages: "LIST_BADGE_IMAGES",
	ListOwnBadges:   "LIST_OWN_BADGES",

	CreateEquipmentAuthorization:   "CREATE_EQUIPMENT_AUTHORIZATION",
	ReadEquipmentAuthorization:     "READ_EQUIPMENT_AUTHORIZATION",
	DeleteEquipmentAuthorization:   "DELETE_EQUIPMENT_AUTHORIZATION",
	ListEquipmentAuthorizations:    "LIST_EQUIPMENT_AUTHORIZATIONS",
	ListOwnEquipmentAuthorizations: "LIST_OWN_EQUIPMENT_AUTHORIZATIONS",

	ListCardTypes: "LIST_CARD_TYPES",

	CreateCard:   "CREATE_CARD",
	ReadCard:     "READ_CARD",
	ModifyCard:   "MODIFY_CARD",
	ListCards:    "LIST_CARDS",
	ListOwnCards: "LIST_OWN_CARDS",

	ReadChargePolicy:   "READ_CHARGE_POLICY",
	ListChargePolicies: "LIST_CHARGE_POLICIES",

	CreateCharge:   "CREATE_CHARGE",
	ReadCharge:     "READ_CHARGE",
	ModifyCharge:   "MODIFY_CHARGE",
	ListCharges:    "LIST_CHARGES",
	ListOwnCharges: "LIST_OWN_CHARGES",

	CreateEquipmentType: "CREATE_EQUIPMENT_TYPE",
	ReadEquipmentType:   "READ_EQUIPMENT_TYPE",
	ModifyEquipmentType: "MODIFY_EQUIPMENT_TYPE",
	DeleteEquipmentType: "DELETE_EQUIPMENT_TYPE",
	ListEquipmentTypes:  "LIST_EQUIPMENT_TYPES",

	CreateEquipment: "CREATE_EQUIPMENT",
	ReadEquipment:   "READ_EQUIPMENT",
	ModifyEquipment: "MODIFY_EQUIPMENT",
	DeleteEquipment: "DELETE_EQUIPMENT",
	ListEquipment:   "LIST_EQUIPMENT",

	CreateLocation: "CREATE_LOCATION",
	ReadLocation:   "READ_LOCATION",
	ModifyLocation: "MODIFY_LOCATION",
	DeleteLocation: "DELETE_LOCATION",
	ListLocations:  "LIST_LOCATIONS",

	ReadLog:  "READ_LOG",
	ListLogs: "LIST_LOGS",

	CreatePayment:   "CREATE_PAYMENT",
	ReadPayment:     "READ_PAYMENT",
	ModifyPayment:   "MODIFY_PAYMENT",
	DeletePayment:   "DELETE_PAYMENT",
	ListPayments:    "LIST_PAYMENTS",
	ListOwnPayments: "LIST_OWN_PAYMENTS",

	CreateRole: "CREATE_ROLE",
	ReadRole:   "READ_ROLE",
	ModifyRole: "MODIFY_ROLE",
	DeleteRole: "DELETE_ROLE",
	ListRoles:  "LIST_ROLES",

	CreateUser:  "CREATE_USER",
	ReadUser:    "READ_USER",
	ModifyUser:  "MODIFY_USER",
	DeleteUser:  "DELETE_USER",
	ListUsers:   "LIST_USERS",
	ReadOwnUser: "READ_OWN_USER",
}

// Valid reports whether p is a recognized member of the enumeration.
func Valid(p Permission) bool {
	_, ok := names[p]
	return ok
}

// String returns the display name for p, or "UNKNOWN" for unrecognized values.
func (p Permission) String() string {
	if name, ok := names[p]; ok {
		return name
	}

	return "UNKNOWN"
}

// All returns every recognized permission. The order is unspecified.
func All() []Permission {
	out := make([]Permission, 0, len(names))
	for p := range names {
		out = append(out, p)
	}

	return out
}
