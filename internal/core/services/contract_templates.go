package services

// Default section templates of the contract body. The computed sections are
// always regenerated from the current deal snapshot; only the boilerplate
// body and the observations persist as user edits. Clause visibility is
// controlled entirely by substitution content (a block token resolves to a
// sentence or to nothing), never by template branching, to stay compatible
// with previously stored templates.

const introTemplate = `CONTRATO DE COMPRAVENTA DE AUTOMOTOR

En la ciudad de [VEHICULO_RADICACION], [FECHA_LETRAS], entre el Sr./Sra. [VENDEDOR_NOMBRE], DNI [VENDEDOR_DNI], CUIT/CUIL [VENDEDOR_CUIT], con domicilio en [VENDEDOR_DOMICILIO], teléfono [VENDEDOR_TELEFONO], en adelante "LA PARTE VENDEDORA", y el Sr./Sra. [COMPRADOR_NOMBRE], DNI [COMPRADOR_DNI], CUIT/CUIL [COMPRADOR_CUIT], con domicilio en [COMPRADOR_DOMICILIO], teléfono [COMPRADOR_TELEFONO], en adelante "LA PARTE COMPRADORA", se conviene celebrar el presente contrato de compraventa, sujeto a las cláusulas siguientes:`

const vehicleClauseTemplate = `PRIMERA: LA PARTE VENDEDORA vende a LA PARTE COMPRADORA el automotor marca [VEHICULO_MARCA], modelo [VEHICULO_MODELO], año [VEHICULO_ANIO], dominio [VEHICULO_PATENTE], motor marca [VEHICULO_MOTOR_MARCA] N° [VEHICULO_MOTOR_NUMERO], chasis marca [VEHICULO_CHASIS_MARCA] N° [VEHICULO_CHASIS_NUMERO], radicado en [VEHICULO_RADICACION], con [VEHICULO_KILOMETRAJE] kilómetros, en el estado en que se encuentra y que LA PARTE COMPRADORA declara conocer y aceptar.`

const priceClauseTemplate = `SEGUNDA: El precio total de la presente operación se fija en la suma de PESOS [PRECIO_TOTAL_LETRAS] ([PRECIO_TOTAL]). [BLOQUE_SENA][BLOQUE_CONTADO][BLOQUE_USADOS][BLOQUE_FINANCIACION][BLOQUE_SALDO][BLOQUE_GASTOS_TRANSFERENCIA]`

const defaultBoilerplate = `TERCERA: LA PARTE VENDEDORA declara que el automotor se encuentra libre de gravámenes, prendas e inhibiciones, y que no registra deudas por patentes, multas ni infracciones a la fecha del presente.

CUARTA: LA PARTE COMPRADORA se obliga a realizar la transferencia de dominio ante el Registro Nacional de la Propiedad del Automotor dentro de los diez (10) días de la firma del presente, haciéndose responsable a partir de la entrega por el uso del vehículo y por toda obligación civil, impositiva o administrativa que de él derive.`

const observationsHeading = "OBSERVACIONES: "

const ratificationBlock = `En prueba de conformidad, se firman dos ejemplares de un mismo tenor y a un solo efecto, en el lugar y fecha indicados en el encabezamiento.


_______________________________          _______________________________
      [VENDEDOR_NOMBRE]                        [COMPRADOR_NOMBRE]
       LA PARTE VENDEDORA                      LA PARTE COMPRADORA`
