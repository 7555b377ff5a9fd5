package entity

// TypeTag classifies a host element. Hosts map their concrete widget
// classes onto these tags; unknown tags fall back to TagWidget.
type TypeTag string

// Well-known tags understood by the default capability table.
const (
	TagWidget    TypeTag = "widget"
	TagContainer TypeTag = "container"

	TagWindow  TypeTag = "window"
	TagDialog  TypeTag = "dialog"
	TagPopup   TypeTag = "popup"
	TagMenu    TypeTag = "menu"
	TagPopover TypeTag = "popover"
	TagTooltip TypeTag = "tooltip"

	TagMenuBar     TypeTag = "menu_bar"
	TagMenuItem    TypeTag = "menu_item"
	TagSubmenuItem TypeTag = "submenu_item"
	TagMenuButton  TypeTag = "menu_button"
	TagComboBox    TypeTag = "combo_box"

	TagButton       TypeTag = "button"
	TagToggleButton TypeTag = "toggle_button"
	TagCheckButton  TypeTag = "check_button"
	TagRadioButton  TypeTag = "radio_button"
	TagLink         TypeTag = "link"
	TagTab          TypeTag = "tab"
	TagSlider       TypeTag = "slider"

	TagEntry      TypeTag = "entry"
	TagTextView   TypeTag = "text_view"
	TagSpinButton TypeTag = "spin_button"

	TagLabel TypeTag = "label"

	TagList  TypeTag = "list"
	TagTable TypeTag = "table"
	TagTree  TypeTag = "tree"
)
