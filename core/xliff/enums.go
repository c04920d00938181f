package xliff

import "github.com/FocuswithJustin/xliffkit/core/enum"

// Enumerated attribute tokens of XLIFF 1.2. Every set also accepts values
// carrying the enum.CustomPrefix.

// CountType is the kind of a <count>.
type CountType string

const (
	CountNumUsage   CountType = "num-usage"
	CountRepetition CountType = "repetition"
	CountTotal      CountType = "total"
)

// CountTypes holds the known count-type tokens.
var CountTypes = enum.NewSet[CountType]("count-type",
	CountNumUsage, CountRepetition, CountTotal,
)

// Unit is the unit a <count> is expressed in.
type Unit string

const (
	UnitWord      Unit = "word"
	UnitPage      Unit = "page"
	UnitTransUnit Unit = "trans-unit"
	UnitBinUnit   Unit = "bin-unit"
	UnitGlyph     Unit = "glyph"
	UnitItem      Unit = "item"
	UnitInstance  Unit = "instance"
	UnitCharacter Unit = "character"
	UnitLine      Unit = "line"
	UnitSentence  Unit = "sentence"
	UnitParagraph Unit = "paragraph"
	UnitSegment   Unit = "segment"
	UnitPlaceable Unit = "placeable"
)

// Units holds the known unit tokens.
var Units = enum.NewSet[Unit]("unit",
	UnitWord, UnitPage, UnitTransUnit, UnitBinUnit, UnitGlyph, UnitItem, UnitInstance,
	UnitCharacter, UnitLine, UnitSentence, UnitParagraph, UnitSegment, UnitPlaceable,
)

// ContextType describes what a <context> holds.
type ContextType string

const (
	ContextDatabase     ContextType = "database"
	ContextElement      ContextType = "element"
	ContextElementtitle ContextType = "elementtitle"
	ContextLinenumber   ContextType = "linenumber"
	ContextNumparams    ContextType = "numparams"
	ContextParamnotes   ContextType = "paramnotes"
	ContextRecord       ContextType = "record"
	ContextRecordtitle  ContextType = "recordtitle"
	ContextSourcefile   ContextType = "sourcefile"
)

// ContextTypes holds the known context-type tokens.
var ContextTypes = enum.NewSet[ContextType]("context-type",
	ContextDatabase, ContextElement, ContextElementtitle, ContextLinenumber,
	ContextNumparams, ContextParamnotes, ContextRecord, ContextRecordtitle,
	ContextSourcefile,
)

// Purpose states what a <context-group> is used for.
type Purpose string

const (
	PurposeInformation Purpose = "information"
	PurposeLocation    Purpose = "location"
	PurposeMatch       Purpose = "match"
)

// Purposes holds the known purpose tokens.
var Purposes = enum.NewSet[Purpose]("purpose",
	PurposeInformation, PurposeLocation, PurposeMatch,
)

// Datatype is the kind of data a <file> or unit was extracted from.
type Datatype string

const (
	DatatypeASP                        Datatype = "asp"
	DatatypeC                          Datatype = "c"
	DatatypeCdf                        Datatype = "cdf"
	DatatypeCfm                        Datatype = "cfm"
	DatatypeCPP                        Datatype = "cpp"
	DatatypeCsharp                     Datatype = "csharp"
	DatatypeCstring                    Datatype = "cstring"
	DatatypeCSV                        Datatype = "csv"
	DatatypeDatabase                   Datatype = "database"
	DatatypeDocumentfooter             Datatype = "documentfooter"
	DatatypeDocumentheader             Datatype = "documentheader"
	DatatypeFiledialog                 Datatype = "filedialog"
	DatatypeForm                       Datatype = "form"
	DatatypeHTML                       Datatype = "html"
	DatatypeHTMLBody                   Datatype = "htmlbody"
	DatatypeINI                        Datatype = "ini"
	DatatypeInterleaf                  Datatype = "interleaf"
	DatatypeJavaclass                  Datatype = "javaclass"
	DatatypeJavapropertyresourcebundle Datatype = "javapropertyresourcebundle"
	DatatypeJavalistresourcebundle     Datatype = "javalistresourcebundle"
	DatatypeJavascript                 Datatype = "javascript"
	DatatypeJscript                    Datatype = "jscript"
	DatatypeLayout                     Datatype = "layout"
	DatatypeLisp                       Datatype = "lisp"
	DatatypeMargin                     Datatype = "margin"
	DatatypeMenufile                   Datatype = "menufile"
	DatatypeMessagefile                Datatype = "messagefile"
	DatatypeMIF                        Datatype = "mif"
	DatatypeMimetype                   Datatype = "mimetype"
	DatatypeMO                         Datatype = "mo"
	DatatypeMsglib                     Datatype = "msglib"
	DatatypePagefooter                 Datatype = "pagefooter"
	DatatypePageheader                 Datatype = "pageheader"
	DatatypeParameters                 Datatype = "parameters"
	DatatypePascal                     Datatype = "pascal"
	DatatypePHP                        Datatype = "php"
	DatatypePlaintext                  Datatype = "plaintext"
	DatatypePO                         Datatype = "po"
	DatatypeReport                     Datatype = "report"
	DatatypeResources                  Datatype = "resources"
	DatatypeRESX                       Datatype = "resx"
	DatatypeRTF                        Datatype = "rtf"
	DatatypeSGML                       Datatype = "sgml"
	DatatypeSGMLDTD                    Datatype = "sgmldtd"
	DatatypeSVG                        Datatype = "svg"
	DatatypeVbscript                   Datatype = "vbscript"
	DatatypeWarning                    Datatype = "warning"
	DatatypeWinres                     Datatype = "winres"
	DatatypeXHTML                      Datatype = "xhtml"
	DatatypeXML                        Datatype = "xml"
	DatatypeXMLDTD                     Datatype = "xmldtd"
	DatatypeXSL                        Datatype = "xsl"
	DatatypeXUL                        Datatype = "xul"
)

// Datatypes holds the known datatype tokens.
var Datatypes = enum.NewSet[Datatype]("datatype",
	DatatypeASP, DatatypeC, DatatypeCdf, DatatypeCfm, DatatypeCPP, DatatypeCsharp,
	DatatypeCstring, DatatypeCSV, DatatypeDatabase, DatatypeDocumentfooter,
	DatatypeDocumentheader, DatatypeFiledialog, DatatypeForm, DatatypeHTML,
	DatatypeHTMLBody, DatatypeINI, DatatypeInterleaf, DatatypeJavaclass,
	DatatypeJavapropertyresourcebundle, DatatypeJavalistresourcebundle, DatatypeJavascript,
	DatatypeJscript, DatatypeLayout, DatatypeLisp, DatatypeMargin, DatatypeMenufile,
	DatatypeMessagefile, DatatypeMIF, DatatypeMimetype, DatatypeMO, DatatypeMsglib,
	DatatypePagefooter, DatatypePageheader, DatatypeParameters, DatatypePascal, DatatypePHP,
	DatatypePlaintext, DatatypePO, DatatypeReport, DatatypeResources, DatatypeRESX,
	DatatypeRTF, DatatypeSGML, DatatypeSGMLDTD, DatatypeSVG, DatatypeVbscript,
	DatatypeWarning, DatatypeWinres, DatatypeXHTML, DatatypeXML, DatatypeXMLDTD,
	DatatypeXSL, DatatypeXUL,
)

// Restype is the resource type of a group or unit.
type Restype string

const (
	RestypeAuto3state          Restype = "auto3state"
	RestypeAutocheckbox        Restype = "autocheckbox"
	RestypeAutoradiobutton     Restype = "autoradiobutton"
	RestypeBedit               Restype = "bedit"
	RestypeBitmap              Restype = "bitmap"
	RestypeButton              Restype = "button"
	RestypeCaption             Restype = "caption"
	RestypeCell                Restype = "cell"
	RestypeCheckbox            Restype = "checkbox"
	RestypeCheckboxmenuitem    Restype = "checkboxmenuitem"
	RestypeCheckedlistbox      Restype = "checkedlistbox"
	RestypeColorchooser        Restype = "colorchooser"
	RestypeCombobox            Restype = "combobox"
	RestypeComboboxexitem      Restype = "comboboxexitem"
	RestypeComboboxitem        Restype = "comboboxitem"
	RestypeComponent           Restype = "component"
	RestypeContextmenu         Restype = "contextmenu"
	RestypeCtext               Restype = "ctext"
	RestypeCursor              Restype = "cursor"
	RestypeDatetimepicker      Restype = "datetimepicker"
	RestypeDefpushbutton       Restype = "defpushbutton"
	RestypeDialog              Restype = "dialog"
	RestypeDlginit             Restype = "dlginit"
	RestypeEdit                Restype = "edit"
	RestypeFile                Restype = "file"
	RestypeFilechooser         Restype = "filechooser"
	RestypeFn                  Restype = "fn"
	RestypeFont                Restype = "font"
	RestypeFooter              Restype = "footer"
	RestypeFrame               Restype = "frame"
	RestypeGrid                Restype = "grid"
	RestypeGroupbox            Restype = "groupbox"
	RestypeHeader              Restype = "header"
	RestypeHeading             Restype = "heading"
	RestypeHedit               Restype = "hedit"
	RestypeHscrollbar          Restype = "hscrollbar"
	RestypeIcon                Restype = "icon"
	RestypeIedit               Restype = "iedit"
	RestypeKeywords            Restype = "keywords"
	RestypeLabel               Restype = "label"
	RestypeLinklabel           Restype = "linklabel"
	RestypeList                Restype = "list"
	RestypeListbox             Restype = "listbox"
	RestypeListitem            Restype = "listitem"
	RestypeLtext               Restype = "ltext"
	RestypeMenu                Restype = "menu"
	RestypeMenubar             Restype = "menubar"
	RestypeMenuitem            Restype = "menuitem"
	RestypeMenuseparator       Restype = "menuseparator"
	RestypeMessage             Restype = "message"
	RestypeMonthcalendar       Restype = "monthcalendar"
	RestypeNumericupdown       Restype = "numericupdown"
	RestypePanel               Restype = "panel"
	RestypePopupmenu           Restype = "popupmenu"
	RestypePushbox             Restype = "pushbox"
	RestypePushbutton          Restype = "pushbutton"
	RestypeRadio               Restype = "radio"
	RestypeRadiobuttonmenuitem Restype = "radiobuttonmenuitem"
	RestypeRcdata              Restype = "rcdata"
	RestypeRow                 Restype = "row"
	RestypeRtext               Restype = "rtext"
	RestypeScrollpane          Restype = "scrollpane"
	RestypeSeparator           Restype = "separator"
	RestypeShortcut            Restype = "shortcut"
	RestypeSpinner             Restype = "spinner"
	RestypeSplitter            Restype = "splitter"
	RestypeState3              Restype = "state3"
	RestypeStatusbar           Restype = "statusbar"
	RestypeString              Restype = "string"
	RestypeTabcontrol          Restype = "tabcontrol"
	RestypeTable               Restype = "table"
	RestypeTextbox             Restype = "textbox"
	RestypeTogglebutton        Restype = "togglebutton"
	RestypeToolbar             Restype = "toolbar"
	RestypeTooltip             Restype = "tooltip"
	RestypeTrackbar            Restype = "trackbar"
	RestypeTree                Restype = "tree"
	RestypeURI                 Restype = "uri"
	RestypeUserbutton          Restype = "userbutton"
	RestypeUsercontrol         Restype = "usercontrol"
	RestypeVar                 Restype = "var"
	RestypeVersioninfo         Restype = "versioninfo"
	RestypeVscrollbar          Restype = "vscrollbar"
	RestypeWindow              Restype = "window"
)

// Restypes holds the known restype tokens.
var Restypes = enum.NewSet[Restype]("restype",
	RestypeAuto3state, RestypeAutocheckbox, RestypeAutoradiobutton, RestypeBedit,
	RestypeBitmap, RestypeButton, RestypeCaption, RestypeCell, RestypeCheckbox,
	RestypeCheckboxmenuitem, RestypeCheckedlistbox, RestypeColorchooser, RestypeCombobox,
	RestypeComboboxexitem, RestypeComboboxitem, RestypeComponent, RestypeContextmenu,
	RestypeCtext, RestypeCursor, RestypeDatetimepicker, RestypeDefpushbutton, RestypeDialog,
	RestypeDlginit, RestypeEdit, RestypeFile, RestypeFilechooser, RestypeFn, RestypeFont,
	RestypeFooter, RestypeFrame, RestypeGrid, RestypeGroupbox, RestypeHeader,
	RestypeHeading, RestypeHedit, RestypeHscrollbar, RestypeIcon, RestypeIedit,
	RestypeKeywords, RestypeLabel, RestypeLinklabel, RestypeList, RestypeListbox,
	RestypeListitem, RestypeLtext, RestypeMenu, RestypeMenubar, RestypeMenuitem,
	RestypeMenuseparator, RestypeMessage, RestypeMonthcalendar, RestypeNumericupdown,
	RestypePanel, RestypePopupmenu, RestypePushbox, RestypePushbutton, RestypeRadio,
	RestypeRadiobuttonmenuitem, RestypeRcdata, RestypeRow, RestypeRtext, RestypeScrollpane,
	RestypeSeparator, RestypeShortcut, RestypeSpinner, RestypeSplitter, RestypeState3,
	RestypeStatusbar, RestypeString, RestypeTabcontrol, RestypeTable, RestypeTextbox,
	RestypeTogglebutton, RestypeToolbar, RestypeTooltip, RestypeTrackbar, RestypeTree,
	RestypeURI, RestypeUserbutton, RestypeUsercontrol, RestypeVar, RestypeVersioninfo,
	RestypeVscrollbar, RestypeWindow,
)

// SizeUnit is the unit of size constraints.
type SizeUnit string

const (
	SizeUnitByte    SizeUnit = "byte"
	SizeUnitChar    SizeUnit = "char"
	SizeUnitCol     SizeUnit = "col"
	SizeUnitCm      SizeUnit = "cm"
	SizeUnitDlgunit SizeUnit = "dlgunit"
	SizeUnitEm      SizeUnit = "em"
	SizeUnitEx      SizeUnit = "ex"
	SizeUnitGlyph   SizeUnit = "glyph"
	SizeUnitIn      SizeUnit = "in"
	SizeUnitMm      SizeUnit = "mm"
	SizeUnitPercent SizeUnit = "percent"
	SizeUnitPixel   SizeUnit = "pixel"
	SizeUnitPoint   SizeUnit = "point"
	SizeUnitRow     SizeUnit = "row"
)

// SizeUnits holds the known size-unit tokens.
var SizeUnits = enum.NewSet[SizeUnit]("size-unit",
	SizeUnitByte, SizeUnitChar, SizeUnitCol, SizeUnitCm, SizeUnitDlgunit, SizeUnitEm,
	SizeUnitEx, SizeUnitGlyph, SizeUnitIn, SizeUnitMm, SizeUnitPercent, SizeUnitPixel,
	SizeUnitPoint, SizeUnitRow,
)

// State is the translation state of a <target>.
type State string

const (
	StateFinal                  State = "final"
	StateNeedsAdaptation        State = "needs-adaptation"
	StateNeedsL10n              State = "needs-l10n"
	StateNeedsReviewAdaptation  State = "needs-review-adaptation"
	StateNeedsReviewL10n        State = "needs-review-l10n"
	StateNeedsReviewTranslation State = "needs-review-translation"
	StateNeedsTranslation       State = "needs-translation"
	StateNew                    State = "new"
	StateSignedOff              State = "signed-off"
	StateTranslated             State = "translated"
)

// States holds the known state tokens.
var States = enum.NewSet[State]("state",
	StateFinal, StateNeedsAdaptation, StateNeedsL10n, StateNeedsReviewAdaptation,
	StateNeedsReviewL10n, StateNeedsReviewTranslation, StateNeedsTranslation, StateNew,
	StateSignedOff, StateTranslated,
)

// StateQualifier qualifies the state of a <target>.
type StateQualifier string

const (
	QualifierExactMatch          StateQualifier = "exact-match"
	QualifierFuzzyMatch          StateQualifier = "fuzzy-match"
	QualifierIdMatch             StateQualifier = "id-match"
	QualifierLeveragedGlossary   StateQualifier = "leveraged-glossary"
	QualifierLeveragedInherited  StateQualifier = "leveraged-inherited"
	QualifierLeveragedMt         StateQualifier = "leveraged-mt"
	QualifierLeveragedRepository StateQualifier = "leveraged-repository"
	QualifierLeveragedTm         StateQualifier = "leveraged-tm"
	QualifierMtSuggestion        StateQualifier = "mt-suggestion"
	QualifierRejectedGrammar     StateQualifier = "rejected-grammar"
	QualifierRejectedInaccurate  StateQualifier = "rejected-inaccurate"
	QualifierRejectedLength      StateQualifier = "rejected-length"
	QualifierRejectedSpelling    StateQualifier = "rejected-spelling"
	QualifierTmSuggestion        StateQualifier = "tm-suggestion"
)

// StateQualifiers holds the known state-qualifier tokens.
var StateQualifiers = enum.NewSet[StateQualifier]("state-qualifier",
	QualifierExactMatch, QualifierFuzzyMatch, QualifierIdMatch, QualifierLeveragedGlossary,
	QualifierLeveragedInherited, QualifierLeveragedMt, QualifierLeveragedRepository,
	QualifierLeveragedTm, QualifierMtSuggestion, QualifierRejectedGrammar,
	QualifierRejectedInaccurate, QualifierRejectedLength, QualifierRejectedSpelling,
	QualifierTmSuggestion,
)

// Annotates names what a <note> refers to.
type Annotates string

const (
	AnnotatesSource  Annotates = "source"
	AnnotatesTarget  Annotates = "target"
	AnnotatesGeneral Annotates = "general"
)

// AnnotatesValues holds the known annotates tokens.
var AnnotatesValues = enum.NewSet[Annotates]("annotates",
	AnnotatesSource, AnnotatesTarget, AnnotatesGeneral,
)

// CType is the kind of formatting an inline code stands for.
type CType string

const (
	CTypeBold       CType = "bold"
	CTypeImage      CType = "image"
	CTypeItalic     CType = "italic"
	CTypeLb         CType = "lb"
	CTypeLink       CType = "link"
	CTypePb         CType = "pb"
	CTypeUnderlined CType = "underlined"
)

// CTypes holds the known ctype tokens.
var CTypes = enum.NewSet[CType]("ctype",
	CTypeBold, CTypeImage, CTypeItalic, CTypeLb, CTypeLink, CTypePb, CTypeUnderlined,
)

// PhCType is the kind of placeholder a <ph> stands for.
type PhCType string

const (
	PhCTypeImage PhCType = "image"
	PhCTypeLb    PhCType = "lb"
	PhCTypePb    PhCType = "pb"
)

// PhCTypes holds the known ctype tokens.
var PhCTypes = enum.NewSet[PhCType]("ctype",
	PhCTypeImage, PhCTypeLb, PhCTypePb,
)

// Pos tells whether an isolated <it> opens or closes a span.
type Pos string

const (
	PosOpen  Pos = "open"
	PosClose Pos = "close"
)

// Positions holds the known pos tokens.
var Positions = enum.NewSet[Pos]("pos",
	PosOpen, PosClose,
)

// Assoc attaches a <ph> to the preceding, following or both sides.
type Assoc string

const (
	AssocP Assoc = "p"
	AssocF Assoc = "f"
	AssocB Assoc = "b"
)

// Assocs holds the known assoc tokens.
var Assocs = enum.NewSet[Assoc]("assoc",
	AssocP, AssocF, AssocB,
)

// MType is the marker type of a <mrk>.
type MType string

const (
	MTypeAbbrev                      MType = "abbrev"
	MTypeAbbreviatedForm             MType = "abbreviated-form"
	MTypeAbbreviation                MType = "abbreviation"
	MTypeAcronym                     MType = "acronym"
	MTypeAppellation                 MType = "appellation"
	MTypeCollocation                 MType = "collocation"
	MTypeCommonName                  MType = "common-name"
	MTypeDatetime                    MType = "datetime"
	MTypeEquation                    MType = "equation"
	MTypeExpandedForm                MType = "expanded-form"
	MTypeFormula                     MType = "formula"
	MTypeHeadTerm                    MType = "head-term"
	MTypeInitialism                  MType = "initialism"
	MTypeInternationalScientificTerm MType = "international-scientific-term"
	MTypeInternationalism            MType = "internationalism"
	MTypeLogicalExpression           MType = "logical-expression"
	MTypeMaterialsManagementUnit     MType = "materials-management-unit"
	MTypeName                        MType = "name"
	MTypeNearSynonym                 MType = "near-synonym"
	MTypePartNumber                  MType = "part-number"
	MTypePhrase                      MType = "phrase"
	MTypePhraseologicalUnit          MType = "phraseological-unit"
	MTypeProtected                   MType = "protected"
	MTypeRomanizedForm               MType = "romanized-form"
	MTypeSeg                         MType = "seg"
	MTypeSetPhrase                   MType = "set-phrase"
	MTypeShortForm                   MType = "short-form"
	MTypeSKU                         MType = "sku"
	MTypeStandardText                MType = "standard-text"
	MTypeSymbol                      MType = "symbol"
	MTypeSynonym                     MType = "synonym"
	MTypeSynonymousPhrase            MType = "synonymous-phrase"
	MTypeTerm                        MType = "term"
	MTypeTranscribedForm             MType = "transcribed-form"
	MTypeTransliteratedForm          MType = "transliterated-form"
	MTypeTruncatedTerm               MType = "truncated-term"
	MTypeVariant                     MType = "variant"
)

// MTypes holds the known mtype tokens.
var MTypes = enum.NewSet[MType]("mtype",
	MTypeAbbrev, MTypeAbbreviatedForm, MTypeAbbreviation, MTypeAcronym, MTypeAppellation,
	MTypeCollocation, MTypeCommonName, MTypeDatetime, MTypeEquation, MTypeExpandedForm,
	MTypeFormula, MTypeHeadTerm, MTypeInitialism, MTypeInternationalScientificTerm,
	MTypeInternationalism, MTypeLogicalExpression, MTypeMaterialsManagementUnit, MTypeName,
	MTypeNearSynonym, MTypePartNumber, MTypePhrase, MTypePhraseologicalUnit, MTypeProtected,
	MTypeRomanizedForm, MTypeSeg, MTypeSetPhrase, MTypeShortForm, MTypeSKU,
	MTypeStandardText, MTypeSymbol, MTypeSynonym, MTypeSynonymousPhrase, MTypeTerm,
	MTypeTranscribedForm, MTypeTransliteratedForm, MTypeTruncatedTerm, MTypeVariant,
)

// AltTransType is the kind of translation an <alt-trans> offers.
type AltTransType string

const (
	AltTransProposal        AltTransType = "proposal"
	AltTransPreviousVersion AltTransType = "previous-version"
	AltTransRejected        AltTransType = "rejected"
	AltTransReference       AltTransType = "reference"
	AltTransAccepted        AltTransType = "accepted"
)

// AltTransTypes holds the known alttranstype tokens.
var AltTransTypes = enum.NewSet[AltTransType]("alttranstype",
	AltTransProposal, AltTransPreviousVersion, AltTransRejected, AltTransReference, AltTransAccepted,
)

// ReformatProp names a target property that may be modified.
type ReformatProp string

const (
	ReformatCoord      ReformatProp = "coord"
	ReformatCoordX     ReformatProp = "coord-x"
	ReformatCoordY     ReformatProp = "coord-y"
	ReformatCoordCX    ReformatProp = "coord-cx"
	ReformatCoordCY    ReformatProp = "coord-cy"
	ReformatFont       ReformatProp = "font"
	ReformatFontName   ReformatProp = "font-name"
	ReformatFontSize   ReformatProp = "font-size"
	ReformatFontWeight ReformatProp = "font-weight"
	ReformatCSSStyle   ReformatProp = "css-style"
	ReformatStyle      ReformatProp = "style"
	ReformatExStyle    ReformatProp = "ex-style"
)

// ReformatProps holds the known reformat list tokens.
var ReformatProps = enum.NewSet[ReformatProp]("reformat",
	ReformatCoord, ReformatCoordX, ReformatCoordY, ReformatCoordCX, ReformatCoordCY,
	ReformatFont, ReformatFontName, ReformatFontSize, ReformatFontWeight,
	ReformatCSSStyle, ReformatStyle, ReformatExStyle,
)
